package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/availability"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	appointmentRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/catalog"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
)

// UseCase books one appointment. Listing and booking are deliberately not
// atomic with each other: the race between two clients who saw the same free
// slot is closed here, by re-validating availability inside a serializable
// transaction and letting the storage constraint arbitrate the remainder.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	calendarRepo     CalendarRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	dayBlockRepo     DayBlockRepository
	bridgeClient     BridgeClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case. bridgeClient may be nil when the external
// calendar bridge is disabled.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	dayBlockRepo DayBlockRepository,
	bridgeClient BridgeClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		calendarRepo:     calendarRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		dayBlockRepo:     dayBlockRepo,
		bridgeClient:     bridgeClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute books the slot
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%d, professional=%d, service=%d, client=%d, start=%s",
		req.BusinessID, req.ProfessionalID, req.ServiceID, req.ClientID, req.StartAt.Format(time.RFC3339))

	// 1. Normalize to UTC, then validate input. The slot listing anchors
	// dates in UTC, so the grid, weekday, hours and day-block checks below
	// must read the instant in that same frame no matter which offset the
	// client wrote the timestamp in.
	req.StartAt = req.StartAt.UTC()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Fetch the business calendar
	cal, err := uc.calendarRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			uc.logger.Warn("CreateAppointment: calendar for business id=%d not found", req.BusinessID)
			return nil, ErrCalendarNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get calendar for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	// 4. Fetch the professional (inactive = not found)
	prof, err := uc.professionalRepo.GetActive(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Fetch the service
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Cross-tenant guard
	if err := validateOwnership(req.BusinessID, prof, svc); err != nil {
		uc.logger.Warn("CreateAppointment: ownership check failed for business=%d, professional=%d, service=%d",
			req.BusinessID, req.ProfessionalID, req.ServiceID)
		return nil, err
	}

	// 7. Start must be in the future. Equality with now is rejected, matching
	// what the slot listing offers.
	if !req.StartAt.After(now) {
		uc.logger.Warn("CreateAppointment: start %s is not in the future", req.StartAt.Format(time.RFC3339))
		return nil, ErrStartInPast
	}

	// 8. Interval must fit inside the effective hours
	if err := validateWithinHours(cal, req.StartAt, svc.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: hours validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 9. Re-validate availability and insert in one serializable transaction.
	// The range read locks the professional's rows for the day; the unique
	// and exclusion constraints on the table catch whatever the lock misses.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Day blocks may have appeared since the client saw the slot
		blocks, err := uc.dayBlockRepo.GetByProfessionalAndDate(txCtx, req.ProfessionalID, req.StartAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get day blocks: %v", err)
			return fmt.Errorf("%w: failed to get day blocks: %v", ErrInternal, err)
		}
		for _, block := range blocks {
			if block.Matches(req.ProfessionalID, req.StartAt) {
				uc.logger.Warn("CreateAppointment: professional id=%d is blocked on %s",
					req.ProfessionalID, req.StartAt.Format(domain.DateFormat))
				return ErrClosedDay
			}
		}

		// 9.2. Read the professional's day under lock
		dayStart := time.Date(req.StartAt.Year(), req.StartAt.Month(), req.StartAt.Day(), 0, 0, 0, 0, req.StartAt.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		appointments, err := uc.appointmentRepo.GetByProfessionalAndRange(txCtx, req.ProfessionalID, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 9.3. Re-check the slot against fresh data
		if !availability.IsSlotStillAvailable(req.ProfessionalID, req.StartAt, svc.DurationMinutes, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s already taken for professional id=%d",
				req.StartAt.Format(time.RFC3339), req.ProfessionalID)
			return ErrSlotConflict
		}

		// 9.4. Insert; service name and price are denormalized for history
		appt := &domain.Appointment{
			BusinessID:      req.BusinessID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			ClientID:        req.ClientID,
			StartAt:         req.StartAt,
			DurationMinutes: svc.DurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: constraint rejected insert, slot %s taken",
					req.StartAt.Format(time.RFC3339))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 10. Best-effort push to the external calendar bridge. Failure never
	// rolls back the committed appointment.
	uc.pushToBridge(ctx, result)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		ClientID:        result.ClientID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) pushToBridge(ctx context.Context, appt *domain.Appointment) {
	if uc.bridgeClient == nil {
		return
	}

	event := &calendarbridge.EventPayload{
		AppointmentID:  appt.ID,
		BusinessID:     appt.BusinessID,
		ProfessionalID: appt.ProfessionalID,
		ServiceName:    appt.ServiceName,
		StartAt:        appt.StartAt,
		EndAt:          appt.EndAt(),
		Status:         string(appt.Status),
	}

	if err := uc.bridgeClient.PushEventWithGracefulDegradation(ctx, event); err != nil {
		// already logged by the client; nothing else to do
		return
	}
}
