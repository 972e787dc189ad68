package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
)

// BikeRepository encapsulates catalog persistence. Outside of seeding the
// catalog is read-only.
type BikeRepository interface {
	Create(ctx context.Context, bike *domain.Bike) error
	GetByID(ctx context.Context, id string) (*domain.Bike, error)
	ListByCategory(ctx context.Context, category domain.BikeCategory) ([]domain.Bike, error)
	ListAll(ctx context.Context) ([]domain.Bike, error)
	DeleteAll(ctx context.Context) error
}

type bikeRepository struct {
	pool *pgxpool.Pool
}

// NewBikeRepository instantiates repository.
func NewBikeRepository(pool *pgxpool.Pool) BikeRepository {
	return &bikeRepository{pool: pool}
}

const bikeColumns = `id, name, model, category, price_per_day, description, image, top_speed`

func (r *bikeRepository) Create(ctx context.Context, bike *domain.Bike) error {
	const query = `
        INSERT INTO bikes (name, model, category, price_per_day, description, image, top_speed)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		bike.Name,
		bike.Model,
		bike.Category,
		bike.PricePerDay,
		bike.Description,
		bike.Image,
		bike.TopSpeed,
	).Scan(&bike.ID)
}

func (r *bikeRepository) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	const query = `SELECT ` + bikeColumns + ` FROM bikes WHERE id=$1`
	var bike domain.Bike
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&bike.ID,
		&bike.Name,
		&bike.Model,
		&bike.Category,
		&bike.PricePerDay,
		&bike.Description,
		&bike.Image,
		&bike.TopSpeed,
	); err != nil {
		return nil, err
	}
	return &bike, nil
}

func (r *bikeRepository) ListByCategory(ctx context.Context, category domain.BikeCategory) ([]domain.Bike, error) {
	// seq preserves catalog creation order within a category.
	const query = `SELECT ` + bikeColumns + ` FROM bikes WHERE category=$1 ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBikes(rows)
}

func (r *bikeRepository) ListAll(ctx context.Context) ([]domain.Bike, error) {
	const query = `SELECT ` + bikeColumns + ` FROM bikes ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBikes(rows)
}

func (r *bikeRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bikes`)
	return err
}

func scanBikes(rows pgx.Rows) ([]domain.Bike, error) {
	var result []domain.Bike
	for rows.Next() {
		var bike domain.Bike
		if err := rows.Scan(
			&bike.ID,
			&bike.Name,
			&bike.Model,
			&bike.Category,
			&bike.PricePerDay,
			&bike.Description,
			&bike.Image,
			&bike.TopSpeed,
		); err != nil {
			return nil, err
		}
		result = append(result, bike)
	}
	return result, rows.Err()
}
