package domain

import "time"

// User is the domain model for riders who place bookings. A single boolean
// flag distinguishes administrators; there is no separate staff entity.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
