package create_appointment

import (
	"context"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
)

// AppointmentRepository is the slice of appointment storage the use case needs
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
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

// BridgeClient pushes committed appointments to the external calendar bridge
type BridgeClient interface {
	PushEventWithGracefulDegradation(ctx context.Context, event *calendarbridge.EventPayload) error
}

// TransactionManager runs the availability re-check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
