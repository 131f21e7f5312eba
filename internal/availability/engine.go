// Package availability is the shared slot-availability and conflict engine.
//
// Every surface that offers or validates appointment times (booking wizard,
// WhatsApp/n8n bot, external calendar feed) goes through the two operations
// here, so overlap semantics cannot drift between call sites. The engine is a
// pure function of its inputs plus "now": no I/O, no caching, no internal
// state. Callers own all data fetching.
package availability

import (
	"fmt"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

// EffectiveHours resolves the opening/closing bounds for a date: the Saturday
// override pair when the date is a Saturday and both fields are set, the
// default pair otherwise. Returns ErrInvalidCalendar when the applied pair is
// not strictly ordered.
func EffectiveHours(cal *domain.BusinessCalendar, date time.Time) (types.TimeString, types.TimeString, error) {
	opening := cal.OpeningTime
	closing := cal.ClosingTime

	if date.Weekday() == time.Saturday && cal.HasSaturdayOverride() {
		opening = *cal.SaturdayOpeningTime
		closing = *cal.SaturdayClosingTime
	}

	openMin, err := opening.MinutesOfDay()
	if err != nil {
		return "", "", fmt.Errorf("%w: opening time %q: %v", ErrInvalidCalendar, opening, err)
	}
	closeMin, err := closing.MinutesOfDay()
	if err != nil {
		return "", "", fmt.Errorf("%w: closing time %q: %v", ErrInvalidCalendar, closing, err)
	}
	if openMin >= closeMin {
		return "", "", fmt.Errorf("%w: opening %s is not before closing %s", ErrInvalidCalendar, opening, closing)
	}

	return opening, closing, nil
}

// ListAvailableSlots computes the bookable starts for one professional on one
// date, at the fixed 30-minute step:
//
//  1. non-working weekday       -> empty (not an error)
//  2. matching day block        -> empty (not an error)
//  3. candidate must start before closing and end at or before closing
//  4. candidate must not overlap any blocking appointment (half-open rule)
//  5. candidate start must be strictly after now
//
// targetDate carries the business's location; appointments are compared as
// absolute instants. Cancelled appointments and appointments of other
// professionals are ignored even if the caller forgot to filter them.
// The result is ordered ascending and recomputable at any time.
func ListAvailableSlots(
	cal *domain.BusinessCalendar,
	professionalID int64,
	serviceDurationMinutes int,
	targetDate time.Time,
	dayBlocks []*domain.DayBlock,
	appointments []*domain.Appointment,
	now time.Time,
) ([]domain.CandidateSlot, error) {
	if serviceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidServiceDuration, serviceDurationMinutes)
	}

	// Hours are validated even for closed days: a broken calendar is a
	// configuration error regardless of which date was asked about
	opening, closing, err := EffectiveHours(cal, targetDate)
	if err != nil {
		return nil, err
	}

	if !cal.IsWorkingDay(targetDate.Weekday()) {
		return []domain.CandidateSlot{}, nil
	}

	for _, block := range dayBlocks {
		if block.Matches(professionalID, targetDate) {
			return []domain.CandidateSlot{}, nil
		}
	}

	openMin, _ := opening.MinutesOfDay()
	closeMin, _ := closing.MinutesOfDay()

	slots := make([]domain.CandidateSlot, 0)

	for startMin := openMin; startMin < closeMin; startMin += domain.SlotStepMinutes {
		// the whole service must fit inside business hours
		if startMin+serviceDurationMinutes > closeMin {
			break
		}

		startAt := atMinutes(targetDate, startMin)
		endAt := startAt.Add(time.Duration(serviceDurationMinutes) * time.Minute)

		if !startAt.After(now) {
			continue
		}

		if overlapsAny(professionalID, startAt, endAt, appointments) {
			continue
		}

		slots = append(slots, domain.CandidateSlot{
			ProfessionalID:  professionalID,
			StartAt:         startAt,
			DurationMinutes: serviceDurationMinutes,
		})
	}

	return slots, nil
}

// IsSlotStillAvailable re-checks one proposed start against freshly fetched
// appointment data, immediately before the insert. Same half-open overlap
// rule as ListAvailableSlots; a false result means the slot was taken and the
// caller must re-list and prompt re-selection, never silently pick another.
func IsSlotStillAvailable(
	professionalID int64,
	proposedStartAt time.Time,
	serviceDurationMinutes int,
	appointments []*domain.Appointment,
) bool {
	if serviceDurationMinutes <= 0 {
		return false
	}
	proposedEndAt := proposedStartAt.Add(time.Duration(serviceDurationMinutes) * time.Minute)
	return !overlapsAny(professionalID, proposedStartAt, proposedEndAt, appointments)
}

// overlapsAny applies the half-open interval rule against every blocking
// appointment of the professional: [s1,e1) and [s2,e2) conflict iff
// s1 < e2 && s2 < e1. An appointment ending exactly when a slot begins (or
// vice versa) does not conflict.
func overlapsAny(professionalID int64, startAt, endAt time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		// cancelled appointments never block, even if the caller's query
		// forgot to exclude them
		if !appt.Blocks() {
			continue
		}
		if startAt.Before(appt.EndAt()) && appt.StartAt.Before(endAt) {
			return true
		}
	}
	return false
}

// atMinutes anchors minutes-since-midnight onto the target date, in the
// date's location.
func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0,
		date.Location(),
	)
}
