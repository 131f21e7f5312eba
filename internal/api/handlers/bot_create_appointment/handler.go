package bot_create_appointment

import (
	"errors"
	"net/http"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/middleware"
	createAppointment "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStartAt     = "formato de data/hora inválido, esperado RFC 3339"
	msgNotFound           = "negócio, profissional ou serviço não encontrado"
	msgSlotConflict       = "este horário acabou de ser reservado, escolha outro"
	msgOutsideHours       = "horário fora do funcionamento do estabelecimento"
	msgClosedDay          = "o profissional não atende nesta data"
	msgStartInPast        = "não é possível agendar no passado"
	msgInvalidStartTime   = "o horário deve estar alinhado à grade de 30 minutos"
	msgInvalidInput       = "dados da requisição inválidos"
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

// Handle POST /webhooks/n8n/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	correlationID, _ := middleware.GetCorrelationID(r.Context())

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks/n8n/appointments - Invalid request body: correlation_id=%s, error=%v", correlationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /webhooks/n8n/appointments - Invalid startAt: correlation_id=%s, start_at=%s", correlationID, req.StartAt)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrCalendarNotFound),
			errors.Is(err, createAppointment.ErrProfessionalNotFound),
			errors.Is(err, createAppointment.ErrServiceNotFound),
			errors.Is(err, createAppointment.ErrProfessionalMismatch):
			h.logger.Warn("POST /webhooks/n8n/appointments - Not found: correlation_id=%s, business_id=%d, professional_id=%d, service_id=%d",
				correlationID, req.BusinessID, req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /webhooks/n8n/appointments - Slot conflict: correlation_id=%s, professional_id=%d, start_at=%s",
				correlationID, req.ProfessionalID, req.StartAt)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrClosedDay):
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrStartInPast):
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /webhooks/n8n/appointments - Invalid input: correlation_id=%s, error=%v", correlationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /webhooks/n8n/appointments - Failed to create appointment: correlation_id=%s, error=%v", correlationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/n8n/appointments - Appointment created: correlation_id=%s, appointment_id=%d, client_id=%d",
		correlationID, resp.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp, correlationID))
}
