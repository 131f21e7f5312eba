package availability

import "errors"

var (
	// ErrInvalidCalendar is returned when the business calendar is
	// structurally broken (opening >= closing). Surfaced to the owner to fix
	// in settings, never retried.
	ErrInvalidCalendar = errors.New("availability: invalid calendar configuration")

	// ErrInvalidServiceDuration is returned for a non-positive service
	// duration. Guards against callers skipping catalog validation.
	ErrInvalidServiceDuration = errors.New("availability: service duration must be positive")
)
