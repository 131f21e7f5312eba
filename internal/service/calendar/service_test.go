package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	dayblockRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/dayblock"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/ptr"
)

// Mock implementations

type mockCalendarRepo struct {
	calendar *domain.BusinessCalendar
	upserted *domain.BusinessCalendar
	err      error
}

func (m *mockCalendarRepo) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessCalendar, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.calendar, nil
}

func (m *mockCalendarRepo) Upsert(ctx context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.upserted = cal
	cal.CreatedAt = time.Now()
	cal.UpdatedAt = cal.CreatedAt
	return cal, nil
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

type mockDayBlockRepo struct {
	blocks     []*domain.DayBlock
	block      *domain.DayBlock
	created    *domain.DayBlock
	deletedID  int64
	createErr  error
	getErr     error
	deleteErr  error
	listErr    error
	listedFrom time.Time
}

func (m *mockDayBlockRepo) Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	block.ID = 10
	block.CreatedAt = time.Now()
	m.created = block
	return block, nil
}

func (m *mockDayBlockRepo) GetByID(ctx context.Context, id int64) (*domain.DayBlock, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.block, nil
}

func (m *mockDayBlockRepo) ListByProfessional(ctx context.Context, professionalID int64, from time.Time) ([]*domain.DayBlock, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.listedFrom = from
	return m.blocks, nil
}

func (m *mockDayBlockRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
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

func newTestService(calRepo *mockCalendarRepo, profRepo *mockProfessionalRepo, blockRepo *mockDayBlockRepo) *Service {
	svc := NewService(calRepo, profRepo, blockRepo, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.October, 13, 15, 30, 0, 0, time.UTC)}
	return svc
}

func activeProfessional() *domain.Professional {
	return &domain.Professional{
		ID:         7,
		BusinessID: 1,
		Name:       "Ana",
		Active:     true,
	}
}

func validUpdateRequest() *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		BusinessID:  1,
		WorkingDays: []int{1, 2, 3, 4, 5},
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}
}

// UpdateCalendar

func TestUpdateCalendar_Success(t *testing.T) {
	calRepo := &mockCalendarRepo{}
	svc := newTestService(calRepo, &mockProfessionalRepo{}, &mockDayBlockRepo{})

	resp, err := svc.UpdateCalendar(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BusinessID)
	assert.Equal(t, "09:00", resp.OpeningTime)
	require.NotNil(t, calRepo.upserted)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, calRepo.upserted.WorkingDays)
}

func TestUpdateCalendar_SaturdayOverride(t *testing.T) {
	calRepo := &mockCalendarRepo{}
	svc := newTestService(calRepo, &mockProfessionalRepo{}, &mockDayBlockRepo{})

	req := validUpdateRequest()
	req.WorkingDays = []int{1, 2, 3, 4, 5, 6}
	req.SaturdayOpeningTime = ptr.Ptr("10:00")
	req.SaturdayClosingTime = ptr.Ptr("14:00")

	resp, err := svc.UpdateCalendar(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.SaturdayOpeningTime)
	assert.Equal(t, "10:00", *resp.SaturdayOpeningTime)
}

func TestUpdateCalendar_OpeningNotBeforeClosing(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{}, &mockDayBlockRepo{})

	req := validUpdateRequest()
	req.OpeningTime = "18:00"
	req.ClosingTime = "09:00"

	_, err := svc.UpdateCalendar(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	req.OpeningTime = "09:00"
	req.ClosingTime = "09:00"

	_, err = svc.UpdateCalendar(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestUpdateCalendar_SaturdayHalfSet(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{}, &mockDayBlockRepo{})

	req := validUpdateRequest()
	req.SaturdayOpeningTime = ptr.Ptr("10:00")
	// closing left nil

	_, err := svc.UpdateCalendar(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestUpdateCalendar_BadWorkingDays(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{}, &mockDayBlockRepo{})

	req := validUpdateRequest()
	req.WorkingDays = []int{1, 2, 7}

	_, err := svc.UpdateCalendar(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	req.WorkingDays = []int{1, 2, 2}

	_, err = svc.UpdateCalendar(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

// CreateDayBlock

func TestCreateDayBlock_Success(t *testing.T) {
	blockRepo := &mockDayBlockRepo{}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, blockRepo)

	resp, err := svc.CreateDayBlock(context.Background(), &models.CreateDayBlockRequest{
		BusinessID:     1,
		ProfessionalID: 7,
		Date:           "2025-10-20",
		Reason:         ptr.Ptr("férias"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-10-20", resp.Date)
	require.NotNil(t, blockRepo.created)
	assert.Equal(t, int64(7), blockRepo.created.ProfessionalID)
}

func TestCreateDayBlock_InvalidDate(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, &mockDayBlockRepo{})

	_, err := svc.CreateDayBlock(context.Background(), &models.CreateDayBlockRequest{
		BusinessID:     1,
		ProfessionalID: 7,
		Date:           "20/10/2025",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDayBlock_CrossTenantProfessional(t *testing.T) {
	prof := activeProfessional()
	prof.BusinessID = 99
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: prof}, &mockDayBlockRepo{})

	_, err := svc.CreateDayBlock(context.Background(), &models.CreateDayBlockRequest{
		BusinessID:     1,
		ProfessionalID: 7,
		Date:           "2025-10-20",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateDayBlock_Duplicate(t *testing.T) {
	blockRepo := &mockDayBlockRepo{createErr: dayblockRepo.ErrDuplicateBlock}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, blockRepo)

	_, err := svc.CreateDayBlock(context.Background(), &models.CreateDayBlockRequest{
		BusinessID:     1,
		ProfessionalID: 7,
		Date:           "2025-10-20",
	})

	assert.ErrorIs(t, err, ErrDuplicateBlock)
}

func TestCreateDayBlock_ProfessionalNotFound(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{},
		&mockProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound}, &mockDayBlockRepo{})

	_, err := svc.CreateDayBlock(context.Background(), &models.CreateDayBlockRequest{
		BusinessID:     1,
		ProfessionalID: 7,
		Date:           "2025-10-20",
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

// ListDayBlocks

func TestListDayBlocks_FromToday(t *testing.T) {
	blockRepo := &mockDayBlockRepo{
		blocks: []*domain.DayBlock{
			{ID: 1, ProfessionalID: 7, BlockedDate: time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, blockRepo)

	resp, err := svc.ListDayBlocks(context.Background(), 1, 7)

	require.NoError(t, err)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "2025-10-20", resp.Blocks[0].Date)

	// the cutoff is midnight of the current day, not the current instant
	assert.Equal(t, time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC), blockRepo.listedFrom)
}

// DeleteDayBlock

func TestDeleteDayBlock_Success(t *testing.T) {
	blockRepo := &mockDayBlockRepo{
		block: &domain.DayBlock{ID: 5, ProfessionalID: 7},
	}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, blockRepo)

	err := svc.DeleteDayBlock(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(5), blockRepo.deletedID)
}

func TestDeleteDayBlock_NotFound(t *testing.T) {
	blockRepo := &mockDayBlockRepo{getErr: dayblockRepo.ErrBlockNotFound}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: activeProfessional()}, blockRepo)

	err := svc.DeleteDayBlock(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDeleteDayBlock_OtherBusiness(t *testing.T) {
	prof := activeProfessional()
	prof.BusinessID = 99
	blockRepo := &mockDayBlockRepo{
		block: &domain.DayBlock{ID: 5, ProfessionalID: 7},
	}
	svc := newTestService(&mockCalendarRepo{}, &mockProfessionalRepo{professional: prof}, blockRepo)

	err := svc.DeleteDayBlock(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, blockRepo.deletedID)
}
