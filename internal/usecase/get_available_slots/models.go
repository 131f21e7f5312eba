package get_available_slots

import "time"

// Request asks for the free slots of one professional/service/date triple.
type Request struct {
	BusinessID     int64     // tenant
	ProfessionalID int64     // staff member to book
	ServiceID      int64     // service whose duration shapes the slots
	Date           time.Time // calendar date, time part ignored
}

// Response carries the open slots, ascending by start time. An empty list is
// a normal answer (closed day, blocked day, fully booked).
type Response struct {
	Date            time.Time
	BusinessID      int64
	ProfessionalID  int64
	ServiceID       int64
	DurationMinutes int
	Slots           []Slot
}

// Slot is one bookable start time.
type Slot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}
