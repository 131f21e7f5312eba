package get_available_slots

import (
	"context"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
)

// AppointmentRepository is the slice of appointment storage the use case needs
type AppointmentRepository interface {
	// GetByProfessionalAndRange fetches non-cancelled appointments of one
	// professional with start_at in [from, to)
	GetByProfessionalAndRange(ctx context.Context, professionalID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// CalendarRepository fetches tenant scheduling configuration
type CalendarRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessCalendar, error)
}

// ProfessionalRepository fetches bookable staff
type ProfessionalRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository fetches the service catalog
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// DayBlockRepository fetches full-day blocks
type DayBlockRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.DayBlock, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger describes the logging methods the use case needs
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
