package delete_day_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar"
)

const (
	msgInvalidBusinessID = "ID do negócio inválido"
	msgInvalidBlockID    = "ID do bloqueio inválido"
	msgNotFound          = "bloqueio não encontrado"
	msgForbidden         = "acesso negado"
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

// Handle DELETE /api/v1/businesses/{businessId}/day-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/day-blocks/{id} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/day-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteDayBlock(r.Context(), blockID, businessID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrBlockNotFound):
			h.logger.Warn("DELETE /businesses/{id}/day-blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrAccessDenied), errors.Is(err, calendar.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /businesses/{id}/day-blocks/{id} - Access denied: business_id=%d, block_id=%d",
				businessID, blockID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /businesses/{id}/day-blocks/{id} - Failed to delete block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/day-blocks/{id} - Block deleted: block_id=%d, business_id=%d", blockID, businessID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
