package image

import (
	"context"

	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
	"github.com/immerseindia/backend/usecase"
)

// Manager owns create/update/delete/refresh for the destination images slice.
type Manager struct {
	repo   repository.ImageRepository
	store  *usecase.Store
	logger *zap.Logger
}

func New(repo repository.ImageRepository, store *usecase.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (m *Manager) Refresh(ctx context.Context) ([]domain.DestinationImage, error) {
	gen := m.store.BeginImages()
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !m.store.PublishImages(gen, items) {
		m.logger.Debug("stale image refetch discarded", zap.Uint64("generation", gen))
	}
	return items, nil
}

// Get looks up a single image, used by the pass-through download path.
func (m *Manager) Get(ctx context.Context, id string) (*domain.DestinationImage, error) {
	return m.repo.GetByID(ctx, id)
}

func (m *Manager) Create(ctx context.Context, img *domain.DestinationImage) (*domain.DestinationImage, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	created, err := m.repo.Create(ctx, img)
	if err != nil {
		return nil, err
	}
	m.refetch(ctx, "create")
	return created, nil
}

func (m *Manager) Update(ctx context.Context, img *domain.DestinationImage) (*domain.DestinationImage, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := m.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	m.refetch(ctx, "update")
	return img, nil
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
		m.logger.Warn("image refetch failed",
			zap.String("operation", operation),
			zap.Error(err))
	}
}
