package models

import (
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

// Request models

// UpdateCalendarRequest replaces a tenant's scheduling configuration
type UpdateCalendarRequest struct {
	BusinessID          int64   `json:"businessId"`
	WorkingDays         []int   `json:"workingDays"`
	OpeningTime         string  `json:"openingTime"`
	ClosingTime         string  `json:"closingTime"`
	SaturdayOpeningTime *string `json:"saturdayOpeningTime,omitempty"`
	SaturdayClosingTime *string `json:"saturdayClosingTime,omitempty"`
}

// ToDomainCalendar converts the request into the domain model.
// Time strings are assumed validated.
func (r *UpdateCalendarRequest) ToDomainCalendar() *domain.BusinessCalendar {
	cal := &domain.BusinessCalendar{
		BusinessID:  r.BusinessID,
		WorkingDays: r.WorkingDays,
		OpeningTime: types.TimeString(r.OpeningTime),
		ClosingTime: types.TimeString(r.ClosingTime),
	}

	if r.SaturdayOpeningTime != nil {
		ts := types.TimeString(*r.SaturdayOpeningTime)
		cal.SaturdayOpeningTime = &ts
	}
	if r.SaturdayClosingTime != nil {
		ts := types.TimeString(*r.SaturdayClosingTime)
		cal.SaturdayClosingTime = &ts
	}

	return cal
}

// CreateDayBlockRequest marks a professional unavailable for a whole date
type CreateDayBlockRequest struct {
	BusinessID     int64   `json:"businessId"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"` // "2025-10-15"
	Reason         *string `json:"reason,omitempty"`
}

// Response models

// CalendarResponse is the calendar DTO
type CalendarResponse struct {
	BusinessID          int64   `json:"businessId"`
	WorkingDays         []int   `json:"workingDays"`
	OpeningTime         string  `json:"openingTime"`
	ClosingTime         string  `json:"closingTime"`
	SaturdayOpeningTime *string `json:"saturdayOpeningTime,omitempty"`
	SaturdayClosingTime *string `json:"saturdayClosingTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayBlockResponse is the day block DTO
type DayBlockResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`
	Reason         *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DayBlockListResponse wraps a list of day blocks
type DayBlockListResponse struct {
	Blocks []DayBlockResponse `json:"blocks"`
}

// Conversion helpers

// FromDomainCalendar converts a domain model into the DTO
func FromDomainCalendar(cal *domain.BusinessCalendar) *CalendarResponse {
	if cal == nil {
		return nil
	}

	resp := &CalendarResponse{
		BusinessID:  cal.BusinessID,
		WorkingDays: cal.WorkingDays,
		OpeningTime: cal.OpeningTime.String(),
		ClosingTime: cal.ClosingTime.String(),
		CreatedAt:   cal.CreatedAt,
		UpdatedAt:   cal.UpdatedAt,
	}

	if cal.SaturdayOpeningTime != nil {
		s := cal.SaturdayOpeningTime.String()
		resp.SaturdayOpeningTime = &s
	}
	if cal.SaturdayClosingTime != nil {
		s := cal.SaturdayClosingTime.String()
		resp.SaturdayClosingTime = &s
	}

	return resp
}

// FromDomainDayBlock converts a domain model into the DTO
func FromDomainDayBlock(b *domain.DayBlock) *DayBlockResponse {
	if b == nil {
		return nil
	}

	return &DayBlockResponse{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.BlockedDate.Format(domain.DateFormat),
		Reason:         b.Reason,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainDayBlockList converts a list of domain models into the DTO
func FromDomainDayBlockList(blocks []*domain.DayBlock) *DayBlockListResponse {
	if blocks == nil {
		return &DayBlockListResponse{
			Blocks: []DayBlockResponse{},
		}
	}

	resp := &DayBlockListResponse{
		Blocks: make([]DayBlockResponse, len(blocks)),
	}

	for i, block := range blocks {
		if blockResp := FromDomainDayBlock(block); blockResp != nil {
			resp.Blocks[i] = *blockResp
		}
	}

	return resp
}
