package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/events"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
	apperrors "github.com/chaithanya-077/ridewave-r/pkg/util"
)

// DateLayout is the wire format for pickup and return dates.
const DateLayout = "2006-01-02"

// displayDateLayout matches the confirmation view's long date format.
const displayDateLayout = "January 02, 2006"

// BookingService coordinates the booking lifecycle: creation with its
// validation pipeline, user cancellation, and the administrator override.
type BookingService struct {
	bookings   repository.BookingRepository
	bikes      repository.BikeRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	BikeRepo    repository.BikeRepository
	Dispatcher  events.Dispatcher
}

// BookingCreateInput carries the raw creation payload. Fields arrive as
// strings because the pipeline owns well-formedness checking.
type BookingCreateInput struct {
	BikeID     string
	PickupDate string
	ReturnDate string
	TotalCost  string
}

// BookingConfirmation is the transient summary shown once on the
// confirmation view.
type BookingConfirmation struct {
	BikeID       string  `json:"bike_id"`
	BikeName     string  `json:"bike_name"`
	BikeModel    string  `json:"bike_model"`
	BikeImage    string  `json:"bike_image"`
	PickupDate   string  `json:"pickup_date"`
	ReturnDate   string  `json:"return_date"`
	DurationDays int     `json:"duration"`
	TotalCost    float64 `json:"total_cost"`
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		bikes:      deps.BikeRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CreateBooking runs the validation pipeline in order, short-circuiting on
// the first failure, then persists the booking with status upcoming.
//
// The caller-supplied total cost is accepted as-is once it parses as a
// positive number; ComputeCost is the authoritative path for deriving it.
// No availability check is performed against other bookings for the same
// bike, so overlapping reservations are accepted.
func (s *BookingService) CreateBooking(ctx context.Context, user *domain.User, input BookingCreateInput) (*domain.Booking, *BookingConfirmation, error) {
	if input.BikeID == "" || input.PickupDate == "" || input.ReturnDate == "" || input.TotalCost == "" {
		return nil, nil, apperrors.NewValidationError(apperrors.CodeMissingOrMalformed,
			"bike_id, pickup_date, return_date and total_cost are required", nil)
	}

	pickup, err := time.Parse(DateLayout, input.PickupDate)
	if err != nil {
		return nil, nil, apperrors.NewValidationError(apperrors.CodeMissingOrMalformed,
			"pickup_date must be a valid date (YYYY-MM-DD)", nil)
	}
	ret, err := time.Parse(DateLayout, input.ReturnDate)
	if err != nil {
		return nil, nil, apperrors.NewValidationError(apperrors.CodeMissingOrMalformed,
			"return_date must be a valid date (YYYY-MM-DD)", nil)
	}
	// ParseFloat accepts "NaN" and "Inf"; either would poison the revenue
	// sum, so reject anything non-finite.
	totalCost, err := strconv.ParseFloat(strings.TrimSpace(input.TotalCost), 64)
	if err != nil || math.IsNaN(totalCost) || math.IsInf(totalCost, 0) || totalCost <= 0 {
		return nil, nil, apperrors.NewValidationError(apperrors.CodeMissingOrMalformed,
			"total_cost must be a positive number", nil)
	}

	// Time-of-day carries no meaning; compare calendar days only so a
	// booking for the current date is still accepted.
	today := s.today()
	if pickup.Before(today) {
		return nil, nil, apperrors.NewValidationError(apperrors.CodePickupInPast,
			"pickup date cannot be in the past", nil)
	}
	if !ret.After(pickup) {
		return nil, nil, apperrors.NewValidationError(apperrors.CodeReturnBeforePickup,
			"return date must be after pickup date", nil)
	}

	bike, err := s.bikes.GetByID(ctx, input.BikeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewValidationError(apperrors.CodeUnknownBike,
				"bike does not exist", map[string]any{"bike_id": input.BikeID})
		}
		return nil, nil, err
	}

	booking := &domain.Booking{
		ReferenceKey: generateBookingKey(),
		UserID:       user.ID,
		BikeID:       bike.ID,
		PickupDate:   pickup,
		ReturnDate:   ret,
		TotalCost:    totalCost,
		Status:       domain.BookingStatusUpcoming,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingCreated,
		BookingID: booking.ID,
		Actor:     events.Actor{UserID: user.ID},
		Payload: events.BookingCreatedPayload{
			ReferenceKey: booking.ReferenceKey,
			BikeID:       bike.ID,
			PickupDate:   booking.PickupDate,
			ReturnDate:   booking.ReturnDate,
			TotalCost:    booking.TotalCost,
		},
	})

	confirmation := &BookingConfirmation{
		BikeID:       bike.ID,
		BikeName:     bike.Name,
		BikeModel:    bike.Model,
		BikeImage:    bike.Image,
		PickupDate:   booking.PickupDate.Format(displayDateLayout),
		ReturnDate:   booking.ReturnDate.Format(displayDateLayout),
		DurationDays: booking.DurationDays(),
		TotalCost:    booking.TotalCost,
	}
	return booking, confirmation, nil
}

// ComputeCost derives the authoritative rental cost from the bike's daily
// price and the whole-day duration.
func ComputeCost(bike *domain.Bike, pickup, ret time.Time) float64 {
	days := int(ret.Sub(pickup).Hours() / 24)
	return bike.PricePerDay * float64(days)
}

// CancelBooking cancels an upcoming booking on behalf of its owner.
func (s *BookingService) CancelBooking(ctx context.Context, user *domain.User, bookingID string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != user.ID {
		return nil, apperrors.NewForbidden("you are not authorized to cancel this booking")
	}
	if booking.Status != domain.BookingStatusUpcoming {
		return nil, apperrors.NewInvalidState("only upcoming bookings can be cancelled")
	}

	oldStatus := booking.Status
	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.UpdateStatus(ctx, booking.ID, booking.Status); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingCancelled,
		BookingID: booking.ID,
		Actor:     events.Actor{UserID: user.ID},
		Payload: events.BookingStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: booking.Status,
		},
	})
	return booking, nil
}

// AdminSetStatus sets any of the three statuses regardless of the current
// one. This override path deliberately bypasses the user-facing transition
// rules.
func (s *BookingService) AdminSetStatus(ctx context.Context, admin *domain.User, bookingID string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(newStatus) {
		return nil, apperrors.NewInvalidValue("invalid status",
			map[string]any{"status": string(newStatus)})
	}
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	booking.Status = newStatus
	if err := s.bookings.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingStatusChanged,
		BookingID: booking.ID,
		Actor:     events.Actor{UserID: admin.ID, IsAdmin: true},
		Payload: events.BookingStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return booking, nil
}

// ListUserBookings returns the rider's bookings, most recent pickup first.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// GetBookingForUser fetches a booking ensuring ownership.
func (s *BookingService) GetBookingForUser(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperrors.NewForbidden("you are not authorized to view this booking")
	}
	return booking, nil
}

// ListAllBookings returns every booking, newest first, for the admin view.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) getBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *BookingService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateBookingKey() string {
	return "BKG-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
