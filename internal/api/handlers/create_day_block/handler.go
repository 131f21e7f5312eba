package create_day_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar"
)

const (
	msgInvalidBusinessID    = "ID do negócio inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgProfessionalNotFound = "profissional não encontrado"
	msgForbidden            = "acesso negado"
	msgDuplicateBlock       = "já existe um bloqueio para este profissional nesta data"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/day-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/day-blocks - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateDayBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/day-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateDayBlock(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrProfessionalNotFound):
			h.logger.Warn("POST /businesses/{id}/day-blocks - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("POST /businesses/{id}/day-blocks - Access denied: business_id=%d, professional_id=%d",
				businessID, req.ProfessionalID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendar.ErrDuplicateBlock):
			h.logger.Warn("POST /businesses/{id}/day-blocks - Duplicate block: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondConflict(w, msgDuplicateBlock)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/day-blocks - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /businesses/{id}/day-blocks - Failed to create block: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/day-blocks - Block created: block_id=%d, professional_id=%d, date=%s",
		result.ID, req.ProfessionalID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
