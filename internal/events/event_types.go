package events

import (
	"time"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingCancelled     EventType = "booking_cancelled"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// Actor encapsulates actor metadata for an event. Admin overrides carry
// IsAdmin so downstream handlers can tell the two paths apart.
type Actor struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	BookingID string      `json:"booking_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	ReferenceKey string    `json:"reference_key"`
	BikeID       string    `json:"bike_id"`
	PickupDate   time.Time `json:"pickup_date"`
	ReturnDate   time.Time `json:"return_date"`
	TotalCost    float64   `json:"total_cost"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}
