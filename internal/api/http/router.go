package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chaithanya-077/ridewave-r/internal/api/http/handlers"
	"github.com/chaithanya-077/ridewave-r/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Bikes          *handlers.BikesHandler
	Bookings       *handlers.BookingsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	app.Get("/bikes", cfg.Bikes.ListBikes)
	app.Get("/bikes/:id", cfg.Bikes.GetBike)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle, auth.RequireUser())
	bookings.Post("", cfg.Bookings.CreateBooking)
	bookings.Get("", cfg.Bookings.ListBookings)
	bookings.Get("/confirmation", cfg.Bookings.Confirmation)
	bookings.Get("/:id", cfg.Bookings.GetBooking)
	bookings.Post("/:id/cancel", cfg.Bookings.CancelBooking)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/bookings", cfg.Admin.ListBookings)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Patch("/bookings/:id/status", cfg.Admin.UpdateBookingStatus)
}
