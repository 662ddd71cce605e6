package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
)

type itineraryRepository struct {
	pool *pgxpool.Pool
}

// NewItineraryRepository returns a Postgres-backed implementation of ItineraryRepository.
func NewItineraryRepository(pool *pgxpool.Pool) repository.ItineraryRepository {
	return &itineraryRepository{pool: pool}
}

func (r *itineraryRepository) List(ctx context.Context) ([]domain.Itinerary, error) {
	const query = `
	SELECT id, destination, region, title, duration, days, image_url, created_at
	FROM itineraries
	ORDER BY created_at DESC, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itineraries []domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, *it)
	}
	return itineraries, rows.Err()
}

func (r *itineraryRepository) Create(ctx context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	if it == nil {
		return nil, domain.ErrInvalidPayload
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO itineraries (id, destination, region, title, duration, days, image_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		it.ID,
		it.Destination,
		it.Region,
		it.Title,
		it.Duration,
		marshalDays(it.Days),
		it.ImageURL,
	).Scan(&it.CreatedAt); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itineraryRepository) Update(ctx context.Context, it *domain.Itinerary) error {
	if it == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE itineraries
	SET destination = $2,
		region = $3,
		title = $4,
		duration = $5,
		days = $6,
		image_url = $7
	WHERE id = $1
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		it.ID,
		it.Destination,
		it.Region,
		it.Title,
		it.Duration,
		marshalDays(it.Days),
		it.ImageURL,
	).Scan(&it.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrItineraryNotFound
		}
		return err
	}
	return nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM itineraries WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItineraryNotFound
	}
	return nil
}

func scanItinerary(row pgx.Row) (*domain.Itinerary, error) {
	var it domain.Itinerary
	var days []byte

	if err := row.Scan(
		&it.ID,
		&it.Destination,
		&it.Region,
		&it.Title,
		&it.Duration,
		&days,
		&it.ImageURL,
		&it.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItineraryNotFound
		}
		return nil, err
	}

	if len(days) > 0 {
		_ = json.Unmarshal(days, &it.Days)
	}
	return &it, nil
}

func marshalDays(days []domain.ItineraryDay) []byte {
	if len(days) == 0 {
		return []byte("[]")
	}
	b, err := json.Marshal(days)
	if err != nil {
		return []byte("[]")
	}
	return b
}
