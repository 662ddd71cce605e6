package usecase

import "github.com/immerseindia/backend/domain"

// OrientationIndex abstracts the per-image orientation records filled in
// asynchronously by the classifier. Lookups for images that have not been
// classified yet report ok=false.
type OrientationIndex interface {
	Get(imageID string) (domain.Orientation, bool)
	Set(imageID string, orientation domain.Orientation) error
}
