package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/dbmetrics"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/psqlbuilder"
)

const professionalColumns = "id, business_id, name, active, created_at, updated_at"

// Repository stores professionals in Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the professional repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive fetches one professional. Inactive professionals are treated as
// not found so they never accept bookings.
func (r *Repository) GetActive(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns).
		From("professionals").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	prof, err := scanProfessional(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan professional: %v", ErrScanRow, err)
	}

	return prof, nil
}

// ListActiveByBusiness fetches the active professionals of one business,
// ordered by name.
func (r *Repository) ListActiveByBusiness(ctx context.Context, businessID int64) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns).
		From("professionals").
		Where(squirrel.Eq{"business_id": businessID, "active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		prof, err := scanProfessional(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByBusiness - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, prof)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByBusiness - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

func scanProfessional(scan func(dest ...interface{}) error) (*domain.Professional, error) {
	var prof domain.Professional
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&prof.ID,
		&prof.BusinessID,
		&prof.Name,
		&prof.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time
	return &prof, nil
}
