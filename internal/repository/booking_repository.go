package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
)

// UserBookingSummary aggregates a rider's booking activity.
type UserBookingSummary struct {
	BookingCount int64
	TotalSpent   float64
}

// BookingRepository encapsulates booking persistence and the aggregate
// queries backing the admin dashboard.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	SumTotalCost(ctx context.Context) (float64, error)
	SummaryByUser(ctx context.Context, userID string) (UserBookingSummary, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, reference_key, user_id, bike_id, pickup_date, return_date, total_cost, status, created_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (reference_key, user_id, bike_id, pickup_date, return_date, total_cost, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		booking.ReferenceKey,
		booking.UserID,
		booking.BikeID,
		booking.PickupDate,
		booking.ReturnDate,
		booking.TotalCost,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ReferenceKey,
		&booking.UserID,
		&booking.BikeID,
		&booking.PickupDate,
		&booking.ReturnDate,
		&booking.TotalCost,
		&booking.Status,
		&booking.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	const query = `UPDATE bookings SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id=$1 ORDER BY pickup_date DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status=$1`, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalCost sums over every booking regardless of status; cancelled
// bookings are deliberately not excluded.
func (r *bookingRepository) SumTotalCost(ctx context.Context) (float64, error) {
	var sum float64
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_cost), 0) FROM bookings`).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *bookingRepository) SummaryByUser(ctx context.Context, userID string) (UserBookingSummary, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(total_cost), 0) FROM bookings WHERE user_id=$1`
	var summary UserBookingSummary
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&summary.BookingCount, &summary.TotalSpent); err != nil {
		return UserBookingSummary{}, err
	}
	return summary, nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.ReferenceKey,
			&booking.UserID,
			&booking.BikeID,
			&booking.PickupDate,
			&booking.ReturnDate,
			&booking.TotalCost,
			&booking.Status,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
