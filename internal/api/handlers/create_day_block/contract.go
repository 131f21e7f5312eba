package create_day_block

import (
	"context"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	CreateDayBlock(ctx context.Context, req *models.CreateDayBlockRequest) (*models.DayBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
