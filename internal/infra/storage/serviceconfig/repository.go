// Package serviceconfig reads the wash service catalog. The catalog is
// owned by the admin CRUD surface; the booking core only reads durations
// and prices from it.
package serviceconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	"github.com/ndelucca/lavadero-booking/pkg/psqlbuilder"
	"github.com/ndelucca/lavadero-booking/pkg/txmanager"
)

var serviceColumns = []string{
	"id",
	"name",
	"duration_minutes",
	"price",
	"deposit",
	"active",
	"created_at",
	"updated_at",
}

// Repository reads service configurations.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a service configuration repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a service configuration.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceConfig, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("service_configs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.ServiceConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Deposit,
		&svc.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// List fetches service configurations, optionally active ones only.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.ServiceConfig, error) {
	executor := txmanager.Executor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("service_configs").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ServiceConfig, 0)
	for rows.Next() {
		var svc domain.ServiceConfig
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.DurationMinutes,
			&svc.Price,
			&svc.Deposit,
			&svc.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
