package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/dbmetrics"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/psqlbuilder"
)

// Repository stores business calendars in Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the calendar repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID fetches one tenant's scheduling configuration.
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"working_days",
		"opening_time",
		"closing_time",
		"saturday_opening_time",
		"saturday_closing_time",
		"created_at",
		"updated_at",
	).
		From("business_calendars").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var cal domain.BusinessCalendar
	var workingDays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cal.BusinessID,
		&workingDays,
		&cal.OpeningTime,
		&cal.ClosingTime,
		&cal.SaturdayOpeningTime,
		&cal.SaturdayClosingTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan calendar: %v", ErrScanRow, err)
	}

	cal.WorkingDays = make([]int, len(workingDays))
	for i, d := range workingDays {
		cal.WorkingDays[i] = int(d)
	}
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}

// Upsert writes a tenant's calendar, creating the row on first save.
// The settings screen is the only writer.
func (r *Repository) Upsert(ctx context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make(pq.Int64Array, len(cal.WorkingDays))
	for i, d := range cal.WorkingDays {
		workingDays[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert("business_calendars").
		Columns(
			"business_id",
			"working_days",
			"opening_time",
			"closing_time",
			"saturday_opening_time",
			"saturday_closing_time",
		).
		Values(
			cal.BusinessID,
			workingDays,
			cal.OpeningTime,
			cal.ClosingTime,
			cal.SaturdayOpeningTime,
			cal.SaturdayClosingTime,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			saturday_opening_time = EXCLUDED.saturday_opening_time,
			saturday_closing_time = EXCLUDED.saturday_closing_time,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}
