package list_day_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar"
)

const (
	msgInvalidBusinessID     = "ID do negócio inválido"
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgProfessionalNotFound  = "profissional não encontrado"
	msgForbidden             = "acesso negado"
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

// Handle GET /api/v1/businesses/{businessId}/professionals/{professionalId}/day-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET .../day-blocks - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET .../day-blocks - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	result, err := h.service.ListDayBlocks(r.Context(), businessID, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrProfessionalNotFound):
			h.logger.Warn("GET .../day-blocks - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("GET .../day-blocks - Access denied: business_id=%d, professional_id=%d", businessID, professionalID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET .../day-blocks - Failed to list blocks: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET .../day-blocks - Retrieved %d blocks: professional_id=%d", len(result.Blocks), professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
