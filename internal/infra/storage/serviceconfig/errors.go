package serviceconfig

import "errors"

var (
	// ErrServiceNotFound is returned when a service configuration does not exist.
	ErrServiceNotFound = errors.New("serviceconfig.repository: service not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("serviceconfig.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("serviceconfig.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("serviceconfig.repository: failed to scan row")
)
