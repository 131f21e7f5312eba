package update_business_calendar

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
	msgInvalidConfiguration = "configuração de agenda inválida"
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

// Handle PUT /api/v1/businesses/{businessId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/calendar - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCalendar(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidConfiguration), errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/calendar - Invalid configuration: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidConfiguration)

		default:
			h.logger.Error("PUT /businesses/{id}/calendar - Failed to update calendar: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/calendar - Calendar updated: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
