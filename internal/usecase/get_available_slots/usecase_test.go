package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	calendarRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/catalog"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/ptr"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

// Mock implementations

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) GetByProfessionalAndRange(ctx context.Context, professionalID int64, from, to time.Time) ([]*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

type mockCalendarRepo struct {
	calendar *domain.BusinessCalendar
	err      error
}

func (m *mockCalendarRepo) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessCalendar, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.calendar, nil
}

type mockProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (m *mockProfessionalRepo) GetActive(ctx context.Context, id int64) (*domain.Professional, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.professional, nil
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.service, nil
}

type mockDayBlockRepo struct {
	blocks []*domain.DayBlock
	err    error
}

func (m *mockDayBlockRepo) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.DayBlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.blocks, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func defaultCalendar() *domain.BusinessCalendar {
	return &domain.BusinessCalendar{
		BusinessID:  1,
		WorkingDays: []int{1, 2, 3, 4, 5},
		OpeningTime: types.TimeString("09:00"),
		ClosingTime: types.TimeString("18:00"),
	}
}

func newTestUseCase(
	appts *mockAppointmentRepo,
	cals *mockCalendarRepo,
	profs *mockProfessionalRepo,
	svcs *mockServiceRepo,
	blocks *mockDayBlockRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appts, cals, profs, svcs, blocks, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_FullOpenDay(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, brt)
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 30, Price: 50}},
		&mockDayBlockRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100, Date: monday,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, time.Date(2025, 10, 13, 9, 0, 0, 0, brt), resp.Slots[0].StartAt)
	assert.Equal(t, time.Date(2025, 10, 13, 17, 30, 0, 0, brt), resp.Slots[17].StartAt)
	assert.Equal(t, time.Date(2025, 10, 13, 18, 0, 0, 0, brt), resp.Slots[17].EndAt)
}

func TestExecute_CalendarNotFound(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{err: calendarRepo.ErrCalendarNotFound},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{err: catalogRepo.ErrServiceNotFound},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CrossTenantProfessionalRejected(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 99, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrProfessionalMismatch)
}

func TestExecute_BlockedDayReturnsEmptyList(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, brt)
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{blocks: []*domain.DayBlock{
			{ID: 1, ProfessionalID: 10, BlockedDate: monday, Reason: ptr.Ptr("férias")},
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100, Date: monday,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MisconfiguredCalendar(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	cal := defaultCalendar()
	cal.OpeningTime = types.TimeString("18:00")
	cal.ClosingTime = types.TimeString("09:00")

	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: cal},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrInvalidCalendar)
}

func TestExecute_AppointmentRemovesSlot(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, brt)
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{appointments: []*domain.Appointment{
			{
				ID: 1, ProfessionalID: 10,
				StartAt:         time.Date(2025, 10, 13, 10, 0, 0, 0, brt),
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		}},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100, Date: monday,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 17)
	for _, s := range resp.Slots {
		assert.NotEqual(t, time.Date(2025, 10, 13, 10, 0, 0, 0, brt), s.StartAt)
	}
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	now := time.Date(2025, 10, 12, 10, 0, 0, 0, brt)

	uc := newTestUseCase(
		&mockAppointmentRepo{err: errors.New("connection refused")},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, DurationMinutes: 30}},
		&mockDayBlockRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{},
		&mockServiceRepo{},
		&mockDayBlockRepo{},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 0, ProfessionalID: 10, ServiceID: 100,
		Date: time.Date(2025, 10, 13, 0, 0, 0, 0, brt),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
