package calendar_feed

import (
	"context"

	appointmentModels "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments/models"
	calendarModels "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

type AppointmentsService interface {
	GetBusinessAppointments(ctx context.Context, req *appointmentModels.GetBusinessAppointmentsRequest) (*appointmentModels.AppointmentListResponse, error)
}

type CalendarService interface {
	ListDayBlocks(ctx context.Context, businessID, professionalID int64) (*calendarModels.DayBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
