package bot_create_appointment

import (
	"time"

	createAppointment "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest is the bot webhook request model.
// The bot books on behalf of the client, so clientId comes from the body
// (the bot channel is trusted via the webhook token).
type CreateAppointmentRequest struct {
	BusinessID     int64   `json:"businessId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	ClientID       int64   `json:"clientId"`
	StartAt        string  `json:"startAt"` // RFC 3339 with offset
	Notes          *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the webhook request into the use case request
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:     r.BusinessID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		ClientID:       r.ClientID,
		StartAt:        startAt,
		Notes:          r.Notes,
	}, nil
}

// CreateAppointmentResponse is the bot webhook response model
type CreateAppointmentResponse struct {
	CorrelationID string    `json:"correlationId"`
	AppointmentID int64     `json:"appointmentId"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Status        string    `json:"status"`
	ServiceName   string    `json:"serviceName"`
	ServicePrice  float64   `json:"servicePrice"`
}

// FromUseCaseResponse converts the use case response into the webhook response
func FromUseCaseResponse(resp *createAppointment.Response, correlationID string) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		CorrelationID: correlationID,
		AppointmentID: resp.ID,
		StartAt:       resp.StartAt,
		EndAt:         resp.EndAt,
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
	}
}
