package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when the caller may not see or change the
	// appointment
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment is already cancelled
	// or completed
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
