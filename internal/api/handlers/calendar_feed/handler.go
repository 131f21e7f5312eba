package calendar_feed

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments"
	appointmentModels "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments/models"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar"
)

const (
	msgInvalidBusinessID = "ID do negócio inválido"
	msgInvalidQuery      = "parâmetros de consulta inválidos"
)

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

type Handler struct {
	appointments AppointmentsService
	calendar     CalendarService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(appointmentsService AppointmentsService, calendarService CalendarService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		appointments: appointmentsService,
		calendar:     calendarService,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /webhooks/calendar/businesses/{businessId}/feed
//
// Read-only free/busy projection for the external calendar integration.
// Confirmed and pending appointments show as busy intervals; day blocks
// show as all-day busy intervals.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /webhooks/calendar/.../feed - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query, err := ParseQuery(businessID, r.URL.Query(), h.timeProvider.Now())
	if err != nil {
		h.logger.Warn("GET /webhooks/calendar/.../feed - Invalid query: business_id=%d, error=%v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.appointments.GetBusinessAppointments(r.Context(), &appointmentModels.GetBusinessAppointmentsRequest{
		BusinessID:     query.BusinessID,
		ProfessionalID: query.ProfessionalID,
		StartDate:      &query.StartDate,
		EndDate:        &query.EndDate,
	})
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /webhooks/calendar/.../feed - Failed to load appointments: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	busy := make([]BusyInterval, 0, len(list.Appointments))
	for _, appt := range list.Appointments {
		busy = append(busy, BusyInterval{
			ProfessionalID: appt.ProfessionalID,
			StartAt:        appt.StartAt,
			EndAt:          appt.EndAt,
			Source:         SourceAppointment,
		})
	}

	// Day blocks are per professional, so they only enter the feed when the
	// integration asks for one professional's agenda.
	if query.ProfessionalID != nil {
		blocks, err := h.calendar.ListDayBlocks(r.Context(), query.BusinessID, *query.ProfessionalID)
		if err != nil && !errors.Is(err, calendar.ErrProfessionalNotFound) {
			h.logger.Error("GET /webhooks/calendar/.../feed - Failed to load day blocks: professional_id=%d, error=%v",
				*query.ProfessionalID, err)
			handlers.RespondInternalError(w)
			return
		}

		if blocks != nil {
			for _, block := range blocks.Blocks {
				date, parseErr := time.Parse(domain.DateFormat, block.Date)
				if parseErr != nil {
					continue
				}
				if date.Before(query.StartDate) || !date.Before(query.EndDate) {
					continue
				}
				busy = append(busy, BusyInterval{
					ProfessionalID: block.ProfessionalID,
					StartAt:        date,
					EndAt:          date.AddDate(0, 0, 1),
					Source:         SourceDayBlock,
				})
			}
		}
	}

	resp := &FeedResponse{
		BusinessID: query.BusinessID,
		StartDate:  query.StartDate.Format(domain.DateFormat),
		EndDate:    query.EndDate.Format(domain.DateFormat),
		Busy:       busy,
	}

	h.logger.Info("GET /webhooks/calendar/.../feed - Served %d busy intervals: business_id=%d", len(busy), businessID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
