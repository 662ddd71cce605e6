package updates

import (
	"context"

	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
	"github.com/immerseindia/backend/usecase"
)

// Manager owns create/update/delete/refresh for the updates feed.
type Manager struct {
	repo   repository.UpdateRepository
	store  *usecase.Store
	logger *zap.Logger
}

func New(repo repository.UpdateRepository, store *usecase.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (m *Manager) Refresh(ctx context.Context) ([]domain.Update, error) {
	gen := m.store.BeginUpdates()
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !m.store.PublishUpdates(gen, items) {
		m.logger.Debug("stale updates refetch discarded", zap.Uint64("generation", gen))
	}
	return items, nil
}

func (m *Manager) Create(ctx context.Context, upd *domain.Update) (*domain.Update, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	created, err := m.repo.Create(ctx, upd)
	if err != nil {
		return nil, err
	}
	m.refetch(ctx, "create")
	return created, nil
}

func (m *Manager) Update(ctx context.Context, upd *domain.Update) (*domain.Update, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	if err := m.repo.Update(ctx, upd); err != nil {
		return nil, err
	}
	m.refetch(ctx, "update")
	return upd, nil
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
		m.logger.Warn("updates refetch failed",
			zap.String("operation", operation),
			zap.Error(err))
	}
}
