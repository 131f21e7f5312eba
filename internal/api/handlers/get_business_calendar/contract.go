package get_business_calendar

import (
	"context"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, businessID int64) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
