package dayblock

import "errors"

var (
	// ErrBlockNotFound is returned when the day block does not exist
	ErrBlockNotFound = errors.New("dayblock.repository: day block not found")

	// ErrDuplicateBlock is returned when a block already exists for the same
	// professional and date
	ErrDuplicateBlock = errors.New("dayblock.repository: block already exists for this date")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("dayblock.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("dayblock.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("dayblock.repository: failed to scan row")
)
