package create_appointment

import "time"

// Request asks to book one slot for a client.
type Request struct {
	BusinessID     int64
	ProfessionalID int64
	ServiceID      int64
	ClientID       int64
	StartAt        time.Time // must match a slot previously offered
	Notes          *string
}

// Response is the committed appointment.
type Response struct {
	ID              int64
	BusinessID      int64
	ProfessionalID  int64
	ServiceID       int64
	ClientID        int64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
