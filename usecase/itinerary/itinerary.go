package itinerary

import (
	"context"

	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
	"github.com/immerseindia/backend/usecase"
)

// Manager owns create/update/delete/refresh for the itineraries slice.
type Manager struct {
	repo   repository.ItineraryRepository
	store  *usecase.Store
	logger *zap.Logger
}

func New(repo repository.ItineraryRepository, store *usecase.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (m *Manager) Refresh(ctx context.Context) ([]domain.Itinerary, error) {
	gen := m.store.BeginItineraries()
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !m.store.PublishItineraries(gen, items) {
		m.logger.Debug("stale itinerary refetch discarded", zap.Uint64("generation", gen))
	}
	return items, nil
}

func (m *Manager) Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}
	created, err := m.repo.Create(ctx, it)
	if err != nil {
		return nil, err
	}
	m.refetch(ctx, "create")
	return created, nil
}

func (m *Manager) Update(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if err := m.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	m.refetch(ctx, "update")
	return it, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.refetch(ctx, "delete")
	return nil
}

func (m *Manager) refetch(ctx context.Context, operation string) {
	if _, err := m.Refresh(ctx); err != nil {
		m.logger.Warn("itinerary refetch failed",
			zap.String("operation", operation),
			zap.Error(err))
	}
}
