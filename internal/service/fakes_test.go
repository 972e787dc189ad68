package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
)

// In-memory repository fakes. They mirror the Postgres implementations'
// contracts, including pgx.ErrNoRows for missing rows.

type fakeUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.IsAdmin = isAdmin
	return nil
}

func (f *fakeUserRepo) AdminExists(_ context.Context) (bool, error) {
	for _, user := range f.users {
		if user.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeBikeRepo struct {
	bikes map[string]*domain.Bike
	order []string
	seq   int
}

func newFakeBikeRepo() *fakeBikeRepo {
	return &fakeBikeRepo{bikes: make(map[string]*domain.Bike)}
}

func (f *fakeBikeRepo) Create(_ context.Context, bike *domain.Bike) error {
	f.seq++
	bike.ID = fmt.Sprintf("bike-%d", f.seq)
	copied := *bike
	f.bikes[bike.ID] = &copied
	f.order = append(f.order, bike.ID)
	return nil
}

func (f *fakeBikeRepo) GetByID(_ context.Context, id string) (*domain.Bike, error) {
	bike, ok := f.bikes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *bike
	return &copied, nil
}

func (f *fakeBikeRepo) ListByCategory(_ context.Context, category domain.BikeCategory) ([]domain.Bike, error) {
	var result []domain.Bike
	for _, id := range f.order {
		if f.bikes[id].Category == category {
			result = append(result, *f.bikes[id])
		}
	}
	return result, nil
}

func (f *fakeBikeRepo) ListAll(_ context.Context) ([]domain.Bike, error) {
	result := make([]domain.Bike, 0, len(f.order))
	for _, id := range f.order {
		result = append(result, *f.bikes[id])
	}
	return result, nil
}

func (f *fakeBikeRepo) DeleteAll(_ context.Context) error {
	f.bikes = make(map[string]*domain.Bike)
	f.order = nil
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.seq++
	booking.ID = fmt.Sprintf("booking-%d", f.seq)
	booking.CreatedAt = time.Now()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	booking.Status = status
	return nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	var result []domain.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			result = append(result, *booking)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PickupDate.After(result[j].PickupDate) })
	return result, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	result := make([]domain.Booking, 0, len(f.bookings))
	for _, booking := range f.bookings {
		result = append(result, *booking)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) SumTotalCost(_ context.Context) (float64, error) {
	var sum float64
	for _, booking := range f.bookings {
		sum += booking.TotalCost
	}
	return sum, nil
}

func (f *fakeBookingRepo) SummaryByUser(_ context.Context, userID string) (repository.UserBookingSummary, error) {
	var summary repository.UserBookingSummary
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			summary.BookingCount++
			summary.TotalSpent += booking.TotalCost
		}
	}
	return summary, nil
}
