package appointments

import (
	"context"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
)

// AppointmentRepository is the slice of appointment storage the service needs
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// BridgeClient pushes appointment changes to the external calendar bridge
type BridgeClient interface {
	PushEventWithGracefulDegradation(ctx context.Context, event *calendarbridge.EventPayload) error
}

// Logger describes the logging methods the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
