package calendarbridge

import "errors"

var (
	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("calendarbridge client: internal error")

	// ErrInvalidResponse is returned when the bridge answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("calendarbridge client: invalid response")

	// ErrServiceDegraded is returned when graceful degradation is applied.
	// The bridge is unavailable; the booking itself already committed, only
	// the external calendar sync is skipped.
	ErrServiceDegraded = errors.New("calendarbridge unavailable: graceful degradation applied")
)
