package domain

import "time"

// Service is a bookable offering. Duration drives slot length and overlap
// math; price is denormalized onto appointments for history.
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
