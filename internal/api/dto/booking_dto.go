package dto

import "time"

// CreateBookingRequest carries the raw booking form fields. Dates use the
// YYYY-MM-DD layout; cost is a string because it is validated, not trusted.
type CreateBookingRequest struct {
	BikeID     string `json:"bike_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
	TotalCost  string `json:"total_cost"`
}

// UpdateBookingStatusRequest is the admin override payload.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID           string    `json:"id"`
	ReferenceKey string    `json:"reference_key"`
	UserID       string    `json:"user_id"`
	BikeID       string    `json:"bike_id"`
	PickupDate   string    `json:"pickup_date"`
	ReturnDate   string    `json:"return_date"`
	TotalCost    float64   `json:"total_cost"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
