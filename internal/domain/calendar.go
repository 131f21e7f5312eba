package domain

import (
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

// BusinessCalendar is one tenant's scheduling configuration: the weekdays it
// operates on, the default daily bounds and the optional Saturday override.
// Created at onboarding, mutated only through the settings screen; the
// availability engine treats it as read-only.
type BusinessCalendar struct {
	BusinessID int64

	// WorkingDays holds weekday numbers, 0=Sunday .. 6=Saturday
	WorkingDays []int

	OpeningTime types.TimeString
	ClosingTime types.TimeString

	// Saturday override applies only when BOTH fields are set
	SaturdayOpeningTime *types.TimeString
	SaturdayClosingTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay reports whether the business operates on the given weekday.
func (c *BusinessCalendar) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// HasSaturdayOverride reports whether both Saturday bounds are configured.
func (c *BusinessCalendar) HasSaturdayOverride() bool {
	return c.SaturdayOpeningTime != nil && !c.SaturdayOpeningTime.IsZero() &&
		c.SaturdayClosingTime != nil && !c.SaturdayClosingTime.IsZero()
}
