package domain

// SlotStepMinutes is the fixed candidate-generation step. Hard-coded today;
// the single place to touch if per-business granularity ever ships.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxCancelReasonLength     = 500
	MaxBlockReasonLength      = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses are the appointment statuses that occupy calendar time.
// Used when filtering appointments for availability computation.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
