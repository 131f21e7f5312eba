package calendar

import (
	"context"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
)

// CalendarRepository stores tenant scheduling configuration
type CalendarRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessCalendar, error)
	Upsert(ctx context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error)
}

// ProfessionalRepository fetches bookable staff
type ProfessionalRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Professional, error)
}

// DayBlockRepository stores full-day blocks
type DayBlockRepository interface {
	Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.DayBlock, error)
	ListByProfessional(ctx context.Context, professionalID int64, from time.Time) ([]*domain.DayBlock, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger describes the logging methods the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
