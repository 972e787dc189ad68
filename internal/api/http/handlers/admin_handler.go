package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chaithanya-077/ridewave-r/internal/api/dto"
	"github.com/chaithanya-077/ridewave-r/internal/auth"
	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/service"
	apperrors "github.com/chaithanya-077/ridewave-r/pkg/util"
)

// AdminHandler exposes the dashboard and booking management endpoints.
// Routes are guarded by auth.RequireAdmin.
type AdminHandler struct {
	bookings *service.BookingService
	reports  *service.ReportService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(bookingService *service.BookingService, reportService *service.ReportService) *AdminHandler {
	return &AdminHandler{bookings: bookingService, reports: reportService}
}

// Stats GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.reports.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// ListBookings GET /admin/bookings.
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListAllBookings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponses(bookings)})
}

// ListUsers GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	summaries, err := h.reports.AllUserSummaries(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// UpdateBookingStatus PATCH /admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(apperrors.CodeMissingOrMalformed, "invalid payload", nil)
	}

	booking, err := h.bookings.AdminSetStatus(c.Context(), principal.User, c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}
