package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	appointmentRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/appointment"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments/models"
)

// Service reads and manages existing appointments. Creation lives in its own
// use case because of the race-closing transaction; everything after the
// insert is handled here.
type Service struct {
	appointmentRepo AppointmentRepository
	bridgeClient    BridgeClient
	logger          Logger
}

// NewService creates the appointments service. bridgeClient may be nil when
// the external calendar bridge is disabled.
func NewService(
	appointmentRepo AppointmentRepository,
	bridgeClient BridgeClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		bridgeClient:    bridgeClient,
		logger:          logger,
	}
}

// GetByID fetches one appointment. The caller sees it only when they are the
// client who booked it or when they act for the owning business.
func (s *Service) GetByID(ctx context.Context, id int64, requestedBy int64, businessID *int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, requestedBy)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(appt, requestedBy, businessID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", requestedBy, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments fetches a client's history, optionally filtered by
// status.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBusinessAppointments fetches a business's agenda with optional
// professional, period and status filters.
func (s *Service) GetBusinessAppointments(ctx context.Context, req *models.GetBusinessAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetBusinessAppointments: fetching appointments for business=%d", req.BusinessID)
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessAppointments: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessAppointments: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessAppointments: successfully fetched %d appointments for business=%d", len(appointments), req.BusinessID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment. Clients may cancel their own; the business
// may cancel any of its appointments. Cancelling frees the slot immediately
// because cancelled rows are invisible to the conflict check.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.RequestedBy)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(appt, req.RequestedBy, req.BusinessID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.RequestedBy, appointmentID)
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)

	s.pushStatusToBridge(ctx, appt, domain.StatusCancelled)

	return nil
}

// UpdateStatus moves an appointment through its lifecycle. Business-side
// only; the business must own the appointment.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s for business=%d",
		appointmentID, req.Status, req.BusinessID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if appt.BusinessID != req.BusinessID {
		s.logger.Warn("UpdateStatus: business=%d does not own appointment id=%d", req.BusinessID, appointmentID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)

	s.pushStatusToBridge(ctx, appt, newStatus)

	return nil
}

// checkAccess allows the booking client or the owning business
func checkAccess(appt *domain.Appointment, requestedBy int64, businessID *int64) error {
	if appt.ClientID == requestedBy {
		return nil
	}
	if businessID != nil && appt.BusinessID == *businessID {
		return nil
	}
	return ErrAccessDenied
}

func (s *Service) pushStatusToBridge(ctx context.Context, appt *domain.Appointment, status domain.AppointmentStatus) {
	if s.bridgeClient == nil {
		return
	}

	event := &calendarbridge.EventPayload{
		AppointmentID:  appt.ID,
		BusinessID:     appt.BusinessID,
		ProfessionalID: appt.ProfessionalID,
		ServiceName:    appt.ServiceName,
		StartAt:        appt.StartAt,
		EndAt:          appt.EndAt(),
		Status:         string(status),
	}

	// best-effort; the client logs failures
	_ = s.bridgeClient.PushEventWithGracefulDegradation(ctx, event)
}
