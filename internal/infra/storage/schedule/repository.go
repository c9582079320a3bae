package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	"github.com/ndelucca/lavadero-booking/pkg/psqlbuilder"
	"github.com/ndelucca/lavadero-booking/pkg/txmanager"
)

const pgUniqueViolation = "23505"

// Repository persists working days and their margins.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday fetches the working day for a weekday with its margins,
// ordered by opening time. onlyEnabledMargins restricts the margin list;
// the day row itself is returned regardless of its enabled flag.
func (r *Repository) GetByWeekday(ctx context.Context, weekday time.Weekday, onlyEnabledMargins bool) (*domain.WorkingDay, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "enabled", "created_at", "updated_at").
		From("working_days").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.WorkingDay
	var wd int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&wd, &day.Enabled, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan working day: %v", ErrScanRow, err)
	}

	day.Weekday = time.Weekday(wd)
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	margins, err := r.ListMargins(ctx, day.Weekday, onlyEnabledMargins)
	if err != nil {
		return nil, err
	}
	day.Margins = margins

	return &day, nil
}

// ListDays fetches every configured working day with all its margins.
func (r *Repository) ListDays(ctx context.Context) ([]*domain.WorkingDay, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "enabled", "created_at", "updated_at").
		From("working_days").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.WorkingDay, 0)
	for rows.Next() {
		var day domain.WorkingDay
		var wd int
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&wd, &day.Enabled, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListDays - scan row: %v", ErrScanRow, err)
		}
		day.Weekday = time.Weekday(wd)
		day.CreatedAt = createdAt.Time
		day.UpdatedAt = updatedAt.Time
		days = append(days, &day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDays - rows error: %v", ErrScanRow, err)
	}

	for _, day := range days {
		margins, err := r.ListMargins(ctx, day.Weekday, false)
		if err != nil {
			return nil, err
		}
		day.Margins = margins
	}

	return days, nil
}

// CreateDay inserts the working day row for a weekday. At most one row per
// weekday exists; a duplicate insert returns ErrDuplicateDay.
func (r *Repository) CreateDay(ctx context.Context, weekday time.Weekday, enabled bool) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_days").
		Columns("weekday", "enabled").
		Values(int(weekday), enabled).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDay
		}
		return fmt.Errorf("%w: CreateDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// SetDayEnabled flips the enabled flag of a working day.
func (r *Repository) SetDayEnabled(ctx context.Context, weekday time.Weekday, enabled bool) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_days").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWorkingDayNotFound
	}

	return nil
}

// DeleteDay removes a working day. Deletion is blocked while the day still
// owns margins.
func (r *Repository) DeleteDay(ctx context.Context, weekday time.Weekday) error {
	executor := txmanager.Executor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("margins").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - build count query: %v", ErrBuildQuery, err)
	}

	var marginCount int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&marginCount); err != nil {
		return fmt.Errorf("%w: DeleteDay - count margins: %v", ErrExecQuery, err)
	}
	if marginCount > 0 {
		return ErrDayHasMargins
	}

	query, args, err := psqlbuilder.Delete("working_days").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWorkingDayNotFound
	}

	return nil
}

// ListMargins fetches the margins of a weekday ordered by opening time.
func (r *Repository) ListMargins(ctx context.Context, weekday time.Weekday, onlyEnabled bool) ([]domain.Margin, error) {
	executor := txmanager.Executor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "weekday", "enabled", "opens_at", "closes_at", "created_at", "updated_at").
		From("margins").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		OrderBy("opens_at ASC")

	if onlyEnabled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMargins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMargins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	margins := make([]domain.Margin, 0)
	for rows.Next() {
		margin, err := scanMargin(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMargins - scan row: %v", ErrScanRow, err)
		}
		margins = append(margins, *margin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMargins - rows error: %v", ErrScanRow, err)
	}

	return margins, nil
}

// GetMarginByID fetches a single margin.
func (r *Repository) GetMarginByID(ctx context.Context, id int64) (*domain.Margin, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "enabled", "opens_at", "closes_at", "created_at", "updated_at").
		From("margins").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMarginByID - build select query: %v", ErrBuildQuery, err)
	}

	margin, err := scanMargin(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMarginNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMarginByID - scan margin: %v", ErrScanRow, err)
	}

	return margin, nil
}

// CreateMargin inserts a margin. Overlap validation belongs to the service
// layer; the unique (weekday, opens_at) index only defends direct writes.
func (r *Repository) CreateMargin(ctx context.Context, margin *domain.Margin) (*domain.Margin, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("margins").
		Columns("weekday", "enabled", "opens_at", "closes_at").
		Values(int(margin.Weekday), margin.Enabled, margin.OpensAt, margin.ClosesAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMargin - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&margin.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMargin - execute insert: %v", ErrExecQuery, err)
	}

	margin.CreatedAt = createdAt.Time
	margin.UpdatedAt = updatedAt.Time

	return margin, nil
}

// UpdateMargin updates a margin's enabled flag and range.
func (r *Repository) UpdateMargin(ctx context.Context, margin *domain.Margin) (*domain.Margin, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update("margins").
		Set("enabled", margin.Enabled).
		Set("opens_at", margin.OpensAt).
		Set("closes_at", margin.ClosesAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": margin.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateMargin - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMarginNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateMargin - execute update: %v", ErrExecQuery, err)
	}

	margin.CreatedAt = createdAt.Time
	margin.UpdatedAt = updatedAt.Time

	return margin, nil
}

// DeleteMargin removes a margin.
func (r *Repository) DeleteMargin(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("margins").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteMargin - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteMargin - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteMargin - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrMarginNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMargin(row rowScanner) (*domain.Margin, error) {
	var margin domain.Margin
	var wd int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&margin.ID,
		&wd,
		&margin.Enabled,
		&margin.OpensAt,
		&margin.ClosesAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	margin.Weekday = time.Weekday(wd)
	margin.CreatedAt = createdAt.Time
	margin.UpdatedAt = updatedAt.Time

	return &margin, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
