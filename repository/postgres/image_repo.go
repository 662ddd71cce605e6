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

type imageRepository struct {
	pool *pgxpool.Pool
}

// NewImageRepository returns a Postgres-backed implementation of ImageRepository.
func NewImageRepository(pool *pgxpool.Pool) repository.ImageRepository {
	return &imageRepository{pool: pool}
}

func (r *imageRepository) List(ctx context.Context) ([]domain.DestinationImage, error) {
	const query = `
	SELECT id, destination, region, url, caption, created_at
	FROM destination_images
	ORDER BY created_at DESC, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.DestinationImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *imageRepository) GetByID(ctx context.Context, id string) (*domain.DestinationImage, error) {
	const query = `
	SELECT id, destination, region, url, caption, created_at
	FROM destination_images
	WHERE id = $1
	`
	return scanImage(r.pool.QueryRow(ctx, query, id))
}

func (r *imageRepository) Create(ctx context.Context, img *domain.DestinationImage) (*domain.DestinationImage, error) {
	if img == nil {
		return nil, domain.ErrInvalidPayload
	}
	if img.ID == "" {
		img.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO destination_images (id, destination, region, url, caption)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		img.ID,
		img.Destination,
		img.Region,
		img.URL,
		img.Caption,
	).Scan(&img.CreatedAt); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *imageRepository) Update(ctx context.Context, img *domain.DestinationImage) error {
	if img == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE destination_images
	SET destination = $2,
		region = $3,
		url = $4,
		caption = $5
	WHERE id = $1
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		img.ID,
		img.Destination,
		img.Region,
		img.URL,
		img.Caption,
	).Scan(&img.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrImageNotFound
		}
		return err
	}
	return nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM destination_images WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func scanImage(row pgx.Row) (*domain.DestinationImage, error) {
	var img domain.DestinationImage
	if err := row.Scan(
		&img.ID,
		&img.Destination,
		&img.Region,
		&img.URL,
		&img.Caption,
		&img.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}
