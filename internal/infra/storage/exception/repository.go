package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	"github.com/ndelucca/lavadero-booking/pkg/psqlbuilder"
	"github.com/ndelucca/lavadero-booking/pkg/txmanager"
)

var exceptionColumns = []string{
	"id",
	"reason",
	"starts_at",
	"ends_at",
	"enabled",
	"created_at",
	"updated_at",
}

// Repository persists closure exceptions.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates an exception repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an exception.
func (r *Repository) Create(ctx context.Context, exc *domain.Exception) (*domain.Exception, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("exceptions").
		Columns("reason", "starts_at", "ends_at", "enabled").
		Values(exc.Reason, exc.StartsAt, exc.EndsAt, exc.Enabled).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return exc, nil
}

// ListOverlapping fetches exceptions intersecting [from, to] using
// inclusive-bound intersection: starts_at <= to AND ends_at >= from.
func (r *Repository) ListOverlapping(ctx context.Context, from, to time.Time, onlyEnabled bool) ([]*domain.Exception, error) {
	executor := txmanager.Executor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(exceptionColumns...).
		From("exceptions").
		Where(squirrel.LtOrEq{"starts_at": to}).
		Where(squirrel.GtOrEq{"ends_at": from}).
		OrderBy("starts_at ASC")

	if onlyEnabled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// List fetches every exception, newest span first.
func (r *Repository) List(ctx context.Context) ([]*domain.Exception, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("exceptions").
		OrderBy("starts_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// SetEnabled soft-deletes (or re-enables) an exception.
func (r *Repository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update("exceptions").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetEnabled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetEnabled - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

// Delete removes an exception permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("exceptions").
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
		return ErrExceptionNotFound
	}

	return nil
}

func scanExceptions(rows *sql.Rows) ([]*domain.Exception, error) {
	exceptions := make([]*domain.Exception, 0)

	for rows.Next() {
		var exc domain.Exception
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.Reason,
			&exc.StartsAt,
			&exc.EndsAt,
			&exc.Enabled,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanExceptions - scan row: %v", ErrScanRow, err)
		}

		exc.StartsAt = exc.StartsAt.UTC()
		exc.EndsAt = exc.EndsAt.UTC()
		exc.CreatedAt = createdAt.Time
		exc.UpdatedAt = updatedAt.Time

		exceptions = append(exceptions, &exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
