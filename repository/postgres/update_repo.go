package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
)

type updateRepository struct {
	pool *pgxpool.Pool
}

// NewUpdateRepository returns a Postgres-backed implementation of UpdateRepository.
func NewUpdateRepository(pool *pgxpool.Pool) repository.UpdateRepository {
	return &updateRepository{pool: pool}
}

func (r *updateRepository) List(ctx context.Context) ([]domain.Update, error) {
	const query = `
	SELECT id, type, title, content, external_url, created_at
	FROM updates
	ORDER BY created_at DESC, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []domain.Update
	for rows.Next() {
		upd, err := scanUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, *upd)
	}
	return updates, rows.Err()
}

func (r *updateRepository) Create(ctx context.Context, upd *domain.Update) (*domain.Update, error) {
	if upd == nil {
		return nil, domain.ErrInvalidPayload
	}
	if upd.ID == "" {
		upd.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO updates (id, type, title, content, external_url)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		upd.ID,
		upd.Type,
		upd.Title,
		upd.Content,
		upd.ExternalURL,
	).Scan(&upd.CreatedAt); err != nil {
		return nil, err
	}
	return upd, nil
}

func (r *updateRepository) Update(ctx context.Context, upd *domain.Update) error {
	if upd == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE updates
	SET type = $2,
		title = $3,
		content = $4,
		external_url = $5
	WHERE id = $1
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		upd.ID,
		upd.Type,
		upd.Title,
		upd.Content,
		upd.ExternalURL,
	).Scan(&upd.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUpdateNotFound
		}
		return err
	}
	return nil
}

func (r *updateRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM updates WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUpdateNotFound
	}
	return nil
}

func scanUpdate(row pgx.Row) (*domain.Update, error) {
	var upd domain.Update
	if err := row.Scan(
		&upd.ID,
		&upd.Type,
		&upd.Title,
		&upd.Content,
		&upd.ExternalURL,
		&upd.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUpdateNotFound
		}
		return nil, err
	}
	return &upd, nil
}
