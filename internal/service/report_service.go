package service

import (
	"context"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
)

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalUsers     int64   `json:"total_users"`
	TotalBookings  int64   `json:"total_bookings"`
	ActiveBookings int64   `json:"active_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// UserSummary pairs a user with their booking totals for the admin view.
type UserSummary struct {
	UserID       string  `json:"user_id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	IsAdmin      bool    `json:"is_admin"`
	BookingCount int64   `json:"booking_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// ReportService computes read-only summaries over bookings and users.
// Every call recomputes from the store; nothing is cached.
type ReportService struct {
	users    repository.UserRepository
	bookings repository.BookingRepository
}

// NewReportService constructs the service.
func NewReportService(users repository.UserRepository, bookings repository.BookingRepository) *ReportService {
	return &ReportService{users: users, bookings: bookings}
}

// TotalUsers counts registered accounts.
func (s *ReportService) TotalUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// TotalBookings counts every booking regardless of status.
func (s *ReportService) TotalBookings(ctx context.Context) (int64, error) {
	return s.bookings.Count(ctx)
}

// CountByStatus counts bookings in one lifecycle state.
func (s *ReportService) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	return s.bookings.CountByStatus(ctx, status)
}

// TotalRevenue sums total_cost over all bookings. Cancelled bookings are
// included, matching the dashboard's historical behavior.
func (s *ReportService) TotalRevenue(ctx context.Context) (float64, error) {
	return s.bookings.SumTotalCost(ctx)
}

// Dashboard gathers the headline counters in one call.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.bookings.CountByStatus(ctx, domain.BookingStatusUpcoming)
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookings.SumTotalCost(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalUsers:     totalUsers,
		TotalBookings:  totalBookings,
		ActiveBookings: active,
		TotalRevenue:   revenue,
	}, nil
}

// PerUserSummary reports one rider's booking count and spend.
func (s *ReportService) PerUserSummary(ctx context.Context, user *domain.User) (*UserSummary, error) {
	summary, err := s.bookings.SummaryByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &UserSummary{
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		IsAdmin:      user.IsAdmin,
		BookingCount: summary.BookingCount,
		TotalSpent:   summary.TotalSpent,
	}, nil
}

// AllUserSummaries reports every user with their booking totals.
func (s *ReportService) AllUserSummaries(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summary, err := s.PerUserSummary(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}
