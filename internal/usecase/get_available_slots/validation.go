package get_available_slots

import (
	"fmt"

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

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateOwnership checks that the professional and the service belong to
// the requested business. Tenants must never see each other's schedules.
func validateOwnership(businessID int64, prof *domain.Professional, svc *domain.Service) error {
	if prof.BusinessID != businessID {
		return ErrProfessionalMismatch
	}
	if svc.BusinessID != businessID {
		return ErrProfessionalMismatch
	}
	return nil
}
