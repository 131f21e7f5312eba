package create_appointment

import "errors"

var (
	// ErrCalendarNotFound is returned when the business has no calendar configured
	ErrCalendarNotFound = errors.New("business calendar not found")

	// ErrProfessionalNotFound is returned when the professional does not exist
	// or is inactive
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalMismatch is returned when the professional or service
	// belongs to a different business
	ErrProfessionalMismatch = errors.New("professional or service does not belong to this business")

	// ErrSlotConflict is returned when the requested start overlaps an
	// existing appointment. Expected during concurrent booking; the client
	// should re-list slots and pick again.
	ErrSlotConflict = errors.New("slot is no longer available")

	// ErrOutsideBusinessHours is returned when the requested interval does
	// not fit inside the effective hours for the date
	ErrOutsideBusinessHours = errors.New("requested time is outside business hours")

	// ErrClosedDay is returned when the date is a non-working weekday or the
	// professional has a day block
	ErrClosedDay = errors.New("professional is not available on this date")

	// ErrStartInPast is returned when the requested start is not in the future
	ErrStartInPast = errors.New("requested time is in the past")

	// ErrInvalidStartTime is returned when the start does not sit on the slot grid
	ErrInvalidStartTime = errors.New("start time is not aligned to the slot grid")

	// ErrInvalidCalendar is returned when the stored calendar hours are
	// inconsistent (opening not strictly before closing)
	ErrInvalidCalendar = errors.New("business calendar is misconfigured")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
