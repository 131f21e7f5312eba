package update_business_calendar

import (
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

// UpdateCalendarRequest HTTP request model
type UpdateCalendarRequest struct {
	WorkingDays         []int   `json:"workingDays"`
	OpeningTime         string  `json:"openingTime"`
	ClosingTime         string  `json:"closingTime"`
	SaturdayOpeningTime *string `json:"saturdayOpeningTime,omitempty"`
	SaturdayClosingTime *string `json:"saturdayClosingTime,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *UpdateCalendarRequest) ToServiceRequest(businessID int64) *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		BusinessID:          businessID,
		WorkingDays:         r.WorkingDays,
		OpeningTime:         r.OpeningTime,
		ClosingTime:         r.ClosingTime,
		SaturdayOpeningTime: r.SaturdayOpeningTime,
		SaturdayClosingTime: r.SaturdayClosingTime,
	}
}
