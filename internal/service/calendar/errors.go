package calendar

import "errors"

var (
	// ErrCalendarNotFound is returned when the business has no calendar configured
	ErrCalendarNotFound = errors.New("business calendar not found")

	// ErrProfessionalNotFound is returned when the professional does not exist
	// or is inactive
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrBlockNotFound is returned when the day block does not exist
	ErrBlockNotFound = errors.New("day block not found")

	// ErrDuplicateBlock is returned when the professional already has a block
	// on that date
	ErrDuplicateBlock = errors.New("day block already exists for this date")

	// ErrAccessDenied is returned when the professional belongs to another
	// business
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidConfiguration is returned when the submitted calendar is
	// inconsistent (bad hours, bad working days)
	ErrInvalidConfiguration = errors.New("invalid calendar configuration")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
