package browse

import (
	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/usecase"
)

// Viewer renders the shared catalog read-only. It applies the region filter,
// the client-side orientation filter for images and the newest-first ordering
// of the updates feed; it never mutates anything.
type Viewer struct {
	store        *usecase.Store
	orientations usecase.OrientationIndex
}

func New(store *usecase.Store, orientations usecase.OrientationIndex) *Viewer {
	return &Viewer{
		store:        store,
		orientations: orientations,
	}
}

func (v *Viewer) Experiences(region domain.RegionSelection) []domain.Experience {
	return domain.FilterByRegion(v.store.Snapshot().Experiences, region)
}

func (v *Viewer) Itineraries(region domain.RegionSelection) []domain.Itinerary {
	return domain.FilterByRegion(v.store.Snapshot().Itineraries, region)
}

// Images applies the region filter and then the orientation filter. Images
// whose orientation has not been classified yet are excluded from a
// non-"all" orientation selection until the classifier records them.
func (v *Viewer) Images(region domain.RegionSelection, orientation domain.OrientationSelection) []domain.DestinationImage {
	images := domain.FilterByRegion(v.store.Snapshot().Images, region)
	return v.filterByOrientation(images, orientation)
}

// Updates returns the feed newest first.
func (v *Viewer) Updates() []domain.Update {
	return domain.SortUpdatesNewestFirst(v.store.Snapshot().Updates)
}

// SearchScoped narrows the catalog to a region first and then applies the
// free-text query, the composition used by the in-section search path.
func (v *Viewer) SearchScoped(region domain.RegionSelection, query string) domain.Catalog {
	scoped := v.store.Snapshot().FilterByRegionSelection(region)
	return domain.Catalog{
		Experiences: domain.MatchQuery(scoped.Experiences, query),
		Itineraries: domain.MatchQuery(scoped.Itineraries, query),
		Images:      domain.MatchQuery(scoped.Images, query),
		Updates:     scoped.Updates,
	}
}

func (v *Viewer) filterByOrientation(images []domain.DestinationImage, selection domain.OrientationSelection) []domain.DestinationImage {
	if selection.IsAll() || v.orientations == nil {
		return images
	}
	want := domain.Orientation(selection)
	var out []domain.DestinationImage
	for _, img := range images {
		if orientation, ok := v.orientations.Get(img.ID); ok && orientation == want {
			out = append(out, img)
		}
	}
	return out
}
