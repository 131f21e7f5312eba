package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a committed booking on a professional's agenda
type Appointment struct {
	ID             int64
	BusinessID     int64
	ProfessionalID int64
	ServiceID      int64
	ClientID       int64

	StartAt         time.Time // absolute instant, timezone-aware
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the exclusive end instant of the appointment.
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Blocks reports whether the appointment occupies calendar time.
// Only cancelled appointments free their slot.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// BusinessAppointmentsFilter filters appointment listings for a business
type BusinessAppointmentsFilter struct {
	BusinessID       int64              // required
	ProfessionalID   *int64             // optional, nil = all professionals
	StartDate        *time.Time         // optional period start (inclusive)
	EndDate          *time.Time         // optional period end (exclusive)
	Status           *AppointmentStatus // optional status filter
	IncludeCancelled bool               // include cancelled appointments
}
