package domain

import "time"

// Professional is a bookable staff member of a business.
// Only active professionals participate in slot generation.
type Professional struct {
	ID         int64
	BusinessID int64
	Name       string
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
