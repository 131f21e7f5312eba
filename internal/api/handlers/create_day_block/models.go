package create_day_block

import (
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

// CreateDayBlockRequest HTTP request model
type CreateDayBlockRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"` // "2025-10-15"
	Reason         *string `json:"reason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *CreateDayBlockRequest) ToServiceRequest(businessID int64) *models.CreateDayBlockRequest {
	return &models.CreateDayBlockRequest{
		BusinessID:     businessID,
		ProfessionalID: r.ProfessionalID,
		Date:           r.Date,
		Reason:         r.Reason,
	}
}
