package dayblock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/dbmetrics"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

const dayBlockColumns = "id, professional_id, blocked_date, reason, created_at"

// Repository stores day blocks in Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the day block repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a day block. Returns ErrDuplicateBlock when a block for the
// same professional and date already exists.
func (r *Repository) Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_blocks").
		Columns("professional_id", "blocked_date", "reason").
		Values(block.ProfessionalID, block.BlockedDate, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBlock
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByID fetches one day block.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayBlockColumns).
		From("day_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.DayBlock
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.ProfessionalID,
		&block.BlockedDate,
		&block.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan day block: %v", ErrScanRow, err)
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}

// GetByProfessionalAndDate fetches the blocks covering one professional on
// one calendar date. Zero or one row in practice.
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayBlockColumns).
		From("day_blocks").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"blocked_date":    date.Format(domain.DateFormat),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDayBlocks(rows)
}

// ListByProfessional fetches a professional's upcoming blocks, oldest first.
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64, from time.Time) ([]*domain.DayBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayBlockColumns).
		From("day_blocks").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.GtOrEq{"blocked_date": from.Format(domain.DateFormat)}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDayBlocks(rows)
}

// Delete removes a day block.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("day_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

func scanDayBlocks(rows *sql.Rows) ([]*domain.DayBlock, error) {
	blocks := make([]*domain.DayBlock, 0)

	for rows.Next() {
		var block domain.DayBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.ProfessionalID,
			&block.BlockedDate,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDayBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDayBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
