package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	appointmentRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/appointment"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

// Mock implementations

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	createErr    error
	rangeErr     error
	nextID       int64
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	appt.ID = m.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	m.created = appt
	return appt, nil
}

func (m *mockAppointmentRepo) GetByProfessionalAndRange(ctx context.Context, professionalID int64, from, to time.Time) ([]*domain.Appointment, error) {
	if m.rangeErr != nil {
		return nil, m.rangeErr
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

type mockBridgeClient struct {
	pushed []*calendarbridge.EventPayload
	err    error
}

func (m *mockBridgeClient) PushEventWithGracefulDegradation(ctx context.Context, event *calendarbridge.EventPayload) error {
	m.pushed = append(m.pushed, event)
	return m.err
}

// passthroughTxManager runs the callback without a real transaction
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type testDeps struct {
	appts  *mockAppointmentRepo
	bridge *mockBridgeClient
}

func newTestUseCase(appts *mockAppointmentRepo, bridge *mockBridgeClient, blocks []*domain.DayBlock, now time.Time) (*UseCase, *testDeps) {
	uc := NewUseCase(
		appts,
		&mockCalendarRepo{calendar: defaultCalendar()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 10, BusinessID: 1, Active: true}},
		&mockServiceRepo{service: &domain.Service{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 30, Price: 50}},
		&mockDayBlockRepo{blocks: blocks},
		bridge,
		passthroughTxManager{},
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, &testDeps{appts: appts, bridge: bridge}
}

func validRequest() *Request {
	return &Request{
		BusinessID:     1,
		ProfessionalID: 10,
		ServiceID:      100,
		ClientID:       500,
		StartAt:        time.Date(2025, 10, 13, 10, 0, 0, 0, brt), // monday
	}
}

func TestExecute_BooksFreeSlot(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	appts := &mockAppointmentRepo{}
	bridge := &mockBridgeClient{}
	uc, deps := newTestUseCase(appts, bridge, nil, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, time.Date(2025, 10, 13, 13, 30, 0, 0, time.UTC), resp.EndAt)

	require.NotNil(t, deps.appts.created)
	assert.Equal(t, domain.StatusConfirmed, deps.appts.created.Status)
	// 10:00 BRT is stored as the 13:00 UTC instant
	assert.Equal(t, time.Date(2025, 10, 13, 13, 0, 0, 0, time.UTC), deps.appts.created.StartAt)

	require.Len(t, deps.bridge.pushed, 1)
	assert.Equal(t, resp.ID, deps.bridge.pushed[0].AppointmentID)
}

func TestExecute_SlotConflictOnRecheck(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	appts := &mockAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID: 7, ProfessionalID: 10,
			StartAt:         time.Date(2025, 10, 13, 10, 0, 0, 0, brt),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}}
	uc, deps := newTestUseCase(appts, &mockBridgeClient{}, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, deps.appts.created)
	assert.Empty(t, deps.bridge.pushed)
}

func TestExecute_SlotConflictFromConstraint(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	appts := &mockAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc, _ := newTestUseCase(appts, &mockBridgeClient{}, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	appts := &mockAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID: 7, ProfessionalID: 10,
			StartAt:         time.Date(2025, 10, 13, 10, 0, 0, 0, brt),
			DurationMinutes: 30,
			Status:          domain.StatusCancelled,
		},
	}}
	uc, _ := newTestUseCase(appts, &mockBridgeClient{}, nil, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_DayBlockRejectsBooking(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	blocks := []*domain.DayBlock{
		{ID: 1, ProfessionalID: 10, BlockedDate: time.Date(2025, 10, 13, 0, 0, 0, 0, brt)},
	}
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, blocks, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_NonWorkingDayRejected(t *testing.T) {
	now := time.Date(2025, 10, 17, 8, 0, 0, 0, brt)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	req := validRequest()
	req.StartAt = time.Date(2025, 10, 19, 10, 0, 0, 0, brt) // sunday

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_OutsideHoursRejected(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	req := validRequest()
	req.StartAt = time.Date(2025, 10, 13, 17, 30, 0, 0, time.UTC)

	// 17:30 fits a 30-min service exactly; 18:00 would not
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	req2 := validRequest()
	req2.StartAt = time.Date(2025, 10, 14, 8, 30, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req2)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_OffsetDoesNotShiftBusinessDay(t *testing.T) {
	now := time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	// Monday 09:00 written in a +14:00 offset is Sunday 19:00 UTC. The
	// business day is resolved in UTC, the same frame the slot listing
	// uses, so this lands on a closed day no matter how it was spelled.
	req := validRequest()
	req.StartAt = time.Date(2025, 10, 13, 9, 0, 0, 0, time.FixedZone("", 14*60*60))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_OffsetOutsideHoursRejected(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	// 17:30 BRT on a working Monday is 20:30 UTC, past closing
	req := validRequest()
	req.StartAt = time.Date(2025, 10, 13, 17, 30, 0, 0, brt)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_PastStartRejected(t *testing.T) {
	now := time.Date(2025, 10, 13, 11, 0, 0, 0, brt)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	req := validRequest() // 10:00, now is 11:00

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_StartEqualToNowRejected(t *testing.T) {
	now := time.Date(2025, 10, 13, 10, 0, 0, 0, brt)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_OffGridStartRejected(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)

	req := validRequest()
	req.StartAt = time.Date(2025, 10, 13, 10, 15, 0, 0, brt)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestExecute_BridgeFailureDoesNotFailBooking(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	bridge := &mockBridgeClient{err: calendarbridge.ErrServiceDegraded}
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, bridge, nil, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_NilBridgeClient(t *testing.T) {
	now := time.Date(2025, 10, 13, 8, 0, 0, 0, brt)
	uc, _ := newTestUseCase(&mockAppointmentRepo{}, &mockBridgeClient{}, nil, now)
	uc.bridgeClient = nil

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}
