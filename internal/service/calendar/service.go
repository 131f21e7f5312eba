package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	calendarRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/calendar"
	dayblockRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/dayblock"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar/models"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

// Service manages tenant scheduling configuration: the weekly calendar and
// per-professional day blocks.
type Service struct {
	calendarRepo     CalendarRepository
	professionalRepo ProfessionalRepository
	dayBlockRepo     DayBlockRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService creates the calendar service
func NewService(
	calendarRepo CalendarRepository,
	professionalRepo ProfessionalRepository,
	dayBlockRepo DayBlockRepository,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:     calendarRepo,
		professionalRepo: professionalRepo,
		dayBlockRepo:     dayBlockRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetCalendar fetches a tenant's scheduling configuration.
func (s *Service) GetCalendar(ctx context.Context, businessID int64) (*models.CalendarResponse, error) {
	s.logger.Info("GetCalendar: fetching calendar for business=%d", businessID)

	cal, err := s.calendarRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("GetCalendar: calendar for business=%d not found", businessID)
			return nil, ErrCalendarNotFound
		}
		s.logger.Error("GetCalendar: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendar: successfully fetched calendar for business=%d", businessID)
	return models.FromDomainCalendar(cal), nil
}

// UpdateCalendar replaces a tenant's scheduling configuration. A calendar
// that would make slot generation impossible is rejected before it is saved.
func (s *Service) UpdateCalendar(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("UpdateCalendar: updating calendar for business=%d", req.BusinessID)

	if err := validateCalendarRequest(req); err != nil {
		s.logger.Warn("UpdateCalendar: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	saved, err := s.calendarRepo.Upsert(ctx, req.ToDomainCalendar())
	if err != nil {
		s.logger.Error("UpdateCalendar: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: UpdateCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCalendar: successfully updated calendar for business=%d", req.BusinessID)
	return models.FromDomainCalendar(saved), nil
}

// CreateDayBlock marks a professional fully unavailable on one date.
func (s *Service) CreateDayBlock(ctx context.Context, req *models.CreateDayBlockRequest) (*models.DayBlockResponse, error) {
	s.logger.Info("CreateDayBlock: blocking professional=%d on %s for business=%d",
		req.ProfessionalID, req.Date, req.BusinessID)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateDayBlock: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if err := s.checkProfessionalOwnership(ctx, req.ProfessionalID, req.BusinessID); err != nil {
		return nil, err
	}

	block := &domain.DayBlock{
		ProfessionalID: req.ProfessionalID,
		BlockedDate:    date,
		Reason:         req.Reason,
	}

	created, err := s.dayBlockRepo.Create(ctx, block)
	if err != nil {
		if errors.Is(err, dayblockRepo.ErrDuplicateBlock) {
			s.logger.Warn("CreateDayBlock: professional=%d already blocked on %s", req.ProfessionalID, req.Date)
			return nil, ErrDuplicateBlock
		}
		s.logger.Error("CreateDayBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateDayBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDayBlock: successfully created block id=%d", created.ID)
	return models.FromDomainDayBlock(created), nil
}

// ListDayBlocks fetches a professional's upcoming blocks.
func (s *Service) ListDayBlocks(ctx context.Context, businessID, professionalID int64) (*models.DayBlockListResponse, error) {
	s.logger.Info("ListDayBlocks: fetching blocks for professional=%d, business=%d", professionalID, businessID)

	if err := s.checkProfessionalOwnership(ctx, professionalID, businessID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	blocks, err := s.dayBlockRepo.ListByProfessional(ctx, professionalID, today)
	if err != nil {
		s.logger.Error("ListDayBlocks: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListDayBlocks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDayBlocks: successfully fetched %d blocks for professional=%d", len(blocks), professionalID)
	return models.FromDomainDayBlockList(blocks), nil
}

// DeleteDayBlock removes a day block. The block must belong to a
// professional of the requesting business.
func (s *Service) DeleteDayBlock(ctx context.Context, blockID, businessID int64) error {
	s.logger.Info("DeleteDayBlock: deleting block id=%d for business=%d", blockID, businessID)

	block, err := s.dayBlockRepo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, dayblockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteDayBlock: block id=%d not found", blockID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteDayBlock: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeleteDayBlock - repository error: %v", ErrInternal, err)
	}

	if err := s.checkProfessionalOwnership(ctx, block.ProfessionalID, businessID); err != nil {
		return err
	}

	if err := s.dayBlockRepo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, dayblockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteDayBlock: block id=%d not found during delete", blockID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteDayBlock: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeleteDayBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDayBlock: successfully deleted block id=%d", blockID)
	return nil
}

// checkProfessionalOwnership verifies the professional exists and belongs to
// the business
func (s *Service) checkProfessionalOwnership(ctx context.Context, professionalID, businessID int64) error {
	prof, err := s.professionalRepo.GetActive(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("checkProfessionalOwnership: professional id=%d not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("checkProfessionalOwnership: failed to get professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if prof.BusinessID != businessID {
		s.logger.Warn("checkProfessionalOwnership: professional id=%d belongs to business=%d, not %d",
			professionalID, prof.BusinessID, businessID)
		return ErrAccessDenied
	}

	return nil
}

// validateCalendarRequest checks the submitted calendar is usable for slot
// generation
func validateCalendarRequest(req *models.UpdateCalendarRequest) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessId must be positive", ErrInvalidInput)
	}

	seen := make(map[int]bool)
	for _, day := range req.WorkingDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: working day %d out of range 0..6", ErrInvalidConfiguration, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: working day %d repeated", ErrInvalidConfiguration, day)
		}
		seen[day] = true
	}

	if err := validateHoursPair(req.OpeningTime, req.ClosingTime); err != nil {
		return err
	}

	// Saturday override is all-or-nothing
	if (req.SaturdayOpeningTime == nil) != (req.SaturdayClosingTime == nil) {
		return fmt.Errorf("%w: saturday hours must set both opening and closing", ErrInvalidConfiguration)
	}
	if req.SaturdayOpeningTime != nil {
		if err := validateHoursPair(*req.SaturdayOpeningTime, *req.SaturdayClosingTime); err != nil {
			return err
		}
	}

	return nil
}

func validateHoursPair(opening, closing string) error {
	openTS := types.TimeString(opening)
	closeTS := types.TimeString(closing)

	openMin, err := openTS.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: opening time %q: %v", ErrInvalidConfiguration, opening, err)
	}
	closeMin, err := closeTS.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: closing time %q: %v", ErrInvalidConfiguration, closing, err)
	}
	if openMin >= closeMin {
		return fmt.Errorf("%w: opening %s is not before closing %s", ErrInvalidConfiguration, opening, closing)
	}

	return nil
}
