package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chaithanya-077/ridewave-r/internal/api/dto"
	"github.com/chaithanya-077/ridewave-r/internal/auth"
	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/service"
	"github.com/chaithanya-077/ridewave-r/internal/session"
	apperrors "github.com/chaithanya-077/ridewave-r/pkg/util"
)

// BookingsHandler manages rider booking endpoints.
type BookingsHandler struct {
	service       *service.BookingService
	confirmations session.ConfirmationStore
	logger        *zap.Logger
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService, confirmations session.ConfirmationStore, logger *zap.Logger) *BookingsHandler {
	return &BookingsHandler{service: bookingService, confirmations: confirmations, logger: logger}
}

// CreateBooking POST /bookings.
func (h *BookingsHandler) CreateBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(apperrors.CodeMissingOrMalformed, "invalid payload", nil)
	}

	booking, confirmation, err := h.service.CreateBooking(c.Context(), principal.User, service.BookingCreateInput{
		BikeID:     req.BikeID,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
		TotalCost:  req.TotalCost,
	})
	if err != nil {
		return err
	}

	// The confirmation view reads this once; losing it does not undo the
	// booking itself.
	if err := h.confirmations.Put(c.Context(), principal.User.ID, confirmation); err != nil {
		h.logger.Warn("failed to store booking confirmation", zap.Error(err))
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"booking":      bookingResponse(booking),
			"confirmation": confirmation,
		},
	})
}

// ListBookings GET /bookings.
func (h *BookingsHandler) ListBookings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	bookings, err := h.service.ListUserBookings(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponses(bookings)})
}

// GetBooking GET /bookings/:id.
func (h *BookingsHandler) GetBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	booking, err := h.service.GetBookingForUser(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// CancelBooking POST /bookings/:id/cancel.
func (h *BookingsHandler) CancelBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	booking, err := h.service.CancelBooking(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// Confirmation GET /bookings/confirmation. Consumes the stored summary.
func (h *BookingsHandler) Confirmation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	confirmation, err := h.confirmations.Take(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	if confirmation == nil {
		return apperrors.NewNotFound("booking confirmation", nil)
	}
	return c.JSON(fiber.Map{"data": confirmation})
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           booking.ID,
		ReferenceKey: booking.ReferenceKey,
		UserID:       booking.UserID,
		BikeID:       booking.BikeID,
		PickupDate:   booking.PickupDate.Format(service.DateLayout),
		ReturnDate:   booking.ReturnDate.Format(service.DateLayout),
		TotalCost:    booking.TotalCost,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
	}
}

func bookingResponses(bookings []domain.Booking) []dto.BookingResponse {
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return items
}
