package create_appointment

import (
	"errors"
	"net/http"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/middleware"
	createAppointment "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidStartAt       = "formato de data/hora inválido, esperado RFC 3339"
	msgMissingUserID        = "ID do usuário ausente"
	msgSlotConflict         = "este horário acabou de ser reservado, escolha outro"
	msgCalendarNotFound     = "agenda do negócio não configurada"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotFound      = "serviço não encontrado"
	msgMismatch             = "profissional ou serviço não pertence a este negócio"
	msgClosedDay            = "o profissional não atende nesta data"
	msgOutsideHours         = "horário fora do expediente"
	msgStartInPast          = "não é possível agendar no passado"
	msgOffGrid              = "horário deve estar alinhado à grade de 30 minutos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: client_id=%d, professional_id=%d, start=%s",
				clientID, req.ProfessionalID, req.StartAt)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrCalendarNotFound):
			h.logger.Warn("POST /appointments - Calendar not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalMismatch):
			h.logger.Warn("POST /appointments - Ownership mismatch: business_id=%d, professional_id=%d, service_id=%d",
				req.BusinessID, req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgMismatch)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: professional_id=%d, start=%s", req.ProfessionalID, req.StartAt)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside hours: professional_id=%d, start=%s", req.ProfessionalID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrStartInPast):
			h.logger.Warn("POST /appointments - Start in past: client_id=%d, start=%s", clientID, req.StartAt)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrInvalidStartTime):
			h.logger.Warn("POST /appointments - Off-grid start: client_id=%d, start=%s", clientID, req.StartAt)
			handlers.RespondBadRequest(w, msgOffGrid)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
