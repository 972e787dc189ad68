package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
)

func seedReportData(t *testing.T) (*ReportService, *fakeUserRepo, *fakeBookingRepo) {
	t.Helper()

	users := newFakeUserRepo()
	bookings := newFakeBookingRepo()
	ctx := context.Background()

	alice := &domain.User{Username: "alice", Email: "alice@example.com"}
	bob := &domain.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	add := func(userID string, cost float64, status domain.BookingStatus) {
		booking := &domain.Booking{
			UserID:     userID,
			BikeID:     "bike-1",
			PickupDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate: time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
			TotalCost:  cost,
			Status:     status,
		}
		require.NoError(t, bookings.Create(ctx, booking))
	}
	add(alice.ID, 10500, domain.BookingStatusUpcoming)
	add(alice.ID, 4000, domain.BookingStatusCancelled)
	add(bob.ID, 2500, domain.BookingStatusCompleted)

	return NewReportService(users, bookings), users, bookings
}

func TestReportService_Counters(t *testing.T) {
	svc, _, _ := seedReportData(t)
	ctx := context.Background()

	totalUsers, err := svc.TotalUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalUsers)

	totalBookings, err := svc.TotalBookings(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, totalBookings)

	upcoming, err := svc.CountByStatus(ctx, domain.BookingStatusUpcoming)
	require.NoError(t, err)
	assert.EqualValues(t, 1, upcoming)

	cancelled, err := svc.CountByStatus(ctx, domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cancelled)
}

func TestReportService_TotalRevenue_IncludesCancelled(t *testing.T) {
	// Cancelled bookings stay in the revenue sum; regression guard for the
	// dashboard's historical behavior.
	svc, _, _ := seedReportData(t)

	revenue, err := svc.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17000.0, revenue)
}

func TestReportService_Dashboard(t *testing.T) {
	svc, _, _ := seedReportData(t)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 3, stats.TotalBookings)
	assert.EqualValues(t, 1, stats.ActiveBookings)
	assert.Equal(t, 17000.0, stats.TotalRevenue)
}

func TestReportService_PerUserSummary(t *testing.T) {
	svc, users, _ := seedReportData(t)
	ctx := context.Background()

	alice, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	summary, err := svc.PerUserSummary(ctx, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.BookingCount)
	assert.Equal(t, 14500.0, summary.TotalSpent)
}

func TestReportService_AllUserSummaries(t *testing.T) {
	svc, _, _ := seedReportData(t)

	summaries, err := svc.AllUserSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byName := make(map[string]UserSummary, len(summaries))
	for _, s := range summaries {
		byName[s.Username] = s
	}
	assert.EqualValues(t, 2, byName["alice"].BookingCount)
	assert.Equal(t, 14500.0, byName["alice"].TotalSpent)
	assert.EqualValues(t, 1, byName["bob"].BookingCount)
	assert.Equal(t, 2500.0, byName["bob"].TotalSpent)
}
