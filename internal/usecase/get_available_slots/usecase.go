package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/availability"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	calendarRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/catalog"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
)

// UseCase lists the open slots of a professional for one service and date.
// Shared by the booking wizard, the bot webhooks and the calendar feed.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	calendarRepo     CalendarRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	dayBlockRepo     DayBlockRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	dayBlockRepo DayBlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		calendarRepo:     calendarRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		dayBlockRepo:     dayBlockRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the slot listing
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, professional=%d, service=%d, date=%s",
		req.BusinessID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Fetch the business calendar
	cal, err := uc.calendarRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			uc.logger.Warn("GetAvailableSlots: calendar for business id=%d not found", req.BusinessID)
			return nil, ErrCalendarNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get calendar for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	// 4. Fetch the professional (inactive = not found)
	prof, err := uc.professionalRepo.GetActive(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Fetch the service
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Cross-tenant guard
	if err := validateOwnership(req.BusinessID, prof, svc); err != nil {
		uc.logger.Warn("GetAvailableSlots: ownership check failed for business=%d, professional=%d, service=%d",
			req.BusinessID, req.ProfessionalID, req.ServiceID)
		return nil, err
	}

	// 7. Fetch day blocks for the date
	blocks, err := uc.dayBlockRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get day blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get day blocks: %v", ErrInternal, err)
	}

	// 8. Fetch the professional's appointments covering the date
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.GetByProfessionalAndRange(ctx, req.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Run the availability engine
	candidates, err := availability.ListAvailableSlots(
		cal,
		req.ProfessionalID,
		svc.DurationMinutes,
		req.Date,
		blocks,
		appointments,
		now,
	)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidCalendar) {
			uc.logger.Error("GetAvailableSlots: calendar for business id=%d is misconfigured: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, Slot{
			StartAt: c.StartAt,
			EndAt:   c.EndAt(),
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for business=%d, professional=%d, service=%d, date=%s",
		len(slots), req.BusinessID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BusinessID:      req.BusinessID,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}, nil
}
