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

type experienceRepository struct {
	pool *pgxpool.Pool
}

// NewExperienceRepository returns a Postgres-backed implementation of ExperienceRepository.
func NewExperienceRepository(pool *pgxpool.Pool) repository.ExperienceRepository {
	return &experienceRepository{pool: pool}
}

func (r *experienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	const query = `
	SELECT id, destination, region, title, description, highlights, image_url, created_at
	FROM experiences
	ORDER BY created_at DESC, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *exp)
	}
	return experiences, rows.Err()
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if exp == nil {
		return nil, domain.ErrInvalidPayload
	}
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO experiences (id, destination, region, title, description, highlights, image_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		exp.ID,
		exp.Destination,
		exp.Region,
		exp.Title,
		exp.Description,
		exp.Highlights,
		exp.ImageURL,
	).Scan(&exp.CreatedAt); err != nil {
		return nil, err
	}
	return exp, nil
}

func (r *experienceRepository) Update(ctx context.Context, exp *domain.Experience) error {
	if exp == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE experiences
	SET destination = $2,
		region = $3,
		title = $4,
		description = $5,
		highlights = $6,
		image_url = $7
	WHERE id = $1
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		exp.ID,
		exp.Destination,
		exp.Region,
		exp.Title,
		exp.Description,
		exp.Highlights,
		exp.ImageURL,
	).Scan(&exp.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrExperienceNotFound
		}
		return err
	}
	return nil
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM experiences WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var exp domain.Experience
	if err := row.Scan(
		&exp.ID,
		&exp.Destination,
		&exp.Region,
		&exp.Title,
		&exp.Description,
		&exp.Highlights,
		&exp.ImageURL,
		&exp.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, err
	}
	return &exp, nil
}
