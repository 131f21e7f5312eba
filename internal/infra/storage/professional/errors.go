package professional

import "errors"

var (
	// ErrProfessionalNotFound is returned when the professional does not exist
	// or is inactive
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("professional.repository: failed to scan row")
)
