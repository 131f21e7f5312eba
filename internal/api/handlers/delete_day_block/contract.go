package delete_day_block

import "context"

type CalendarService interface {
	DeleteDayBlock(ctx context.Context, blockID, businessID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
