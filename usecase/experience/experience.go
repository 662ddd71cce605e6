package experience

import (
	"context"

	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
	"github.com/immerseindia/backend/usecase"
)

// Manager owns create/update/delete/refresh for the experiences slice.
// After every successful mutation it refetches the full collection from the
// repository and republishes it; the repository response is canonical, there
// is no optimistic merge.
type Manager struct {
	repo   repository.ExperienceRepository
	store  *usecase.Store
	logger *zap.Logger
}

func New(repo repository.ExperienceRepository, store *usecase.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Refresh fetches the full collection and republishes it into the shared
// store. Stale responses lose to any fetch issued after this one.
func (m *Manager) Refresh(ctx context.Context) ([]domain.Experience, error) {
	gen := m.store.BeginExperiences()
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !m.store.PublishExperiences(gen, items) {
		m.logger.Debug("stale experience refetch discarded", zap.Uint64("generation", gen))
	}
	return items, nil
}

func (m *Manager) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	created, err := m.repo.Create(ctx, exp)
	if err != nil {
		return nil, err
	}
	m.refetch(ctx, "create")
	return created, nil
}

func (m *Manager) Update(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if err := m.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	m.refetch(ctx, "update")
	return exp, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.refetch(ctx, "delete")
	return nil
}

// refetch runs the post-mutation refresh. The mutation itself already
// succeeded, so a refetch failure is logged and the store keeps its
// last-known-good slice.
func (m *Manager) refetch(ctx context.Context, operation string) {
	if _, err := m.Refresh(ctx); err != nil {
		m.logger.Warn("experience refetch failed",
			zap.String("operation", operation),
			zap.Error(err))
	}
}
