package calendar

import "errors"

var (
	// ErrCalendarNotFound is returned when the business has no calendar row
	ErrCalendarNotFound = errors.New("calendar.repository: business calendar not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
