package get_available_slots

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

	// ErrInvalidCalendar is returned when the stored calendar hours are
	// inconsistent (opening not strictly before closing)
	ErrInvalidCalendar = errors.New("business calendar is misconfigured")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
