package list_day_blocks

import (
	"context"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	ListDayBlocks(ctx context.Context, businessID, professionalID int64) (*models.DayBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
