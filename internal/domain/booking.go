package domain

import "time"

// BookingStatus enumerates lifecycle states for bookings.
type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusUpcoming, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is the aggregate for a rental reservation. The owning user and
// referenced bike never change after creation, and TotalCost is fixed at the
// value accepted during creation.
type Booking struct {
	ID           string
	ReferenceKey string
	UserID       string
	BikeID       string
	PickupDate   time.Time
	ReturnDate   time.Time
	TotalCost    float64
	Status       BookingStatus
	CreatedAt    time.Time
}

// DurationDays returns the whole rental length in days.
func (b *Booking) DurationDays() int {
	return int(b.ReturnDate.Sub(b.PickupDate).Hours() / 24)
}
