package bot_find_slots

import (
	"errors"
	"net/http"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/middleware"
	getAvailableSlots "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgNotFound           = "negócio, profissional ou serviço não encontrado"
	msgInvalidInput       = "dados da requisição inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /webhooks/n8n/find-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	correlationID, _ := middleware.GetCorrelationID(r.Context())

	var req FindSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks/n8n/find-slots - Invalid request body: correlation_id=%s, error=%v", correlationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /webhooks/n8n/find-slots - Invalid date: correlation_id=%s, date=%s", correlationID, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCalendarNotFound),
			errors.Is(err, getAvailableSlots.ErrProfessionalNotFound),
			errors.Is(err, getAvailableSlots.ErrServiceNotFound),
			errors.Is(err, getAvailableSlots.ErrProfessionalMismatch):
			h.logger.Warn("POST /webhooks/n8n/find-slots - Not found: correlation_id=%s, business_id=%d, professional_id=%d, service_id=%d",
				correlationID, req.BusinessID, req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /webhooks/n8n/find-slots - Invalid input: correlation_id=%s, error=%v", correlationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /webhooks/n8n/find-slots - Failed to find slots: correlation_id=%s, error=%v", correlationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/n8n/find-slots - Found %d slots: correlation_id=%s, professional_id=%d, date=%s",
		len(resp.Slots), correlationID, req.ProfessionalID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, correlationID))
}
