package repository

import (
	"context"

	"github.com/immerseindia/backend/domain"
)

// The content repositories form the data gateway the managers talk to.
// List is the sole source of truth after any mutation: managers refetch the
// full collection rather than merging results locally.

type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, exp *domain.Experience) error
	Delete(ctx context.Context, id string) error
}

type ItineraryRepository interface {
	List(ctx context.Context) ([]domain.Itinerary, error)
	Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error)
	Update(ctx context.Context, it *domain.Itinerary) error
	Delete(ctx context.Context, id string) error
}

type ImageRepository interface {
	List(ctx context.Context) ([]domain.DestinationImage, error)
	GetByID(ctx context.Context, id string) (*domain.DestinationImage, error)
	Create(ctx context.Context, img *domain.DestinationImage) (*domain.DestinationImage, error)
	Update(ctx context.Context, img *domain.DestinationImage) error
	Delete(ctx context.Context, id string) error
}

type UpdateRepository interface {
	List(ctx context.Context) ([]domain.Update, error)
	Create(ctx context.Context, upd *domain.Update) (*domain.Update, error)
	Update(ctx context.Context, upd *domain.Update) error
	Delete(ctx context.Context, id string) error
}
