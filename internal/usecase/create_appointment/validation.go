package create_appointment

import (
	"fmt"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/availability"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
)

// validateRequest validates the request fields
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.StartAt.Second() != 0 || req.StartAt.Nanosecond() != 0 ||
		req.StartAt.Minute()%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: startAt must sit on a %d-minute boundary", ErrInvalidStartTime, domain.SlotStepMinutes)
	}

	return nil
}

// validateOwnership checks that the professional and the service belong to
// the requested business. Tenants must never book across each other.
func validateOwnership(businessID int64, prof *domain.Professional, svc *domain.Service) error {
	if prof.BusinessID != businessID {
		return ErrProfessionalMismatch
	}
	if svc.BusinessID != businessID {
		return ErrProfessionalMismatch
	}
	return nil
}

// validateWithinHours checks that [startAt, startAt+duration) fits inside the
// effective hours of the date and that the weekday is a working day.
func validateWithinHours(cal *domain.BusinessCalendar, startAt time.Time, durationMinutes int) error {
	opening, closing, err := availability.EffectiveHours(cal, startAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	if !cal.IsWorkingDay(startAt.Weekday()) {
		return ErrClosedDay
	}

	openMin, _ := opening.MinutesOfDay()
	closeMin, _ := closing.MinutesOfDay()

	startMin := startAt.Hour()*60 + startAt.Minute()
	if startMin < openMin || startMin+durationMinutes > closeMin {
		return ErrOutsideBusinessHours
	}

	return nil
}
