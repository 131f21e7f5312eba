package bot_find_slots

import (
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	getAvailableSlots "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/get_available_slots"
)

// FindSlotsRequest is the bot webhook request model
type FindSlotsRequest struct {
	BusinessID     int64  `json:"businessId"`
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"` // "2025-10-15"
}

// ToUseCaseRequest converts the webhook request into the use case request
func (r *FindSlotsRequest) ToUseCaseRequest() (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID:     r.BusinessID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
	}, nil
}

// FindSlotsResponse is the bot webhook response model.
// The correlation ID lets the bot tie the answer back to a conversation.
type FindSlotsResponse struct {
	CorrelationID   string   `json:"correlationId"`
	Date            string   `json:"date"`
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // RFC 3339 start times
}

// FromUseCaseResponse converts the use case response into the webhook response
func FromUseCaseResponse(resp *getAvailableSlots.Response, correlationID string) *FindSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.StartAt.Format(time.RFC3339)
	}

	return &FindSlotsResponse{
		CorrelationID:   correlationID,
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
