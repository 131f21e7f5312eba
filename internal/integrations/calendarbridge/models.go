package calendarbridge

import "time"

// EventPayload is the appointment event pushed to the external calendar
// bridge. Times travel as RFC 3339 with offset so the bridge never has to
// guess the business time zone.
type EventPayload struct {
	AppointmentID  int64     `json:"appointment_id"`
	BusinessID     int64     `json:"business_id"`
	ProfessionalID int64     `json:"professional_id"`
	ServiceName    string    `json:"service_name"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
}

// ErrorResponse is the error body the bridge returns
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
