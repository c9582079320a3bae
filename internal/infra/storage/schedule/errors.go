package schedule

import "errors"

var (
	// ErrWorkingDayNotFound is returned when no working day exists for a weekday.
	ErrWorkingDayNotFound = errors.New("schedule.repository: working day not found")

	// ErrMarginNotFound is returned when a margin does not exist.
	ErrMarginNotFound = errors.New("schedule.repository: margin not found")

	// ErrDuplicateDay is returned when a working day already exists for the weekday.
	ErrDuplicateDay = errors.New("schedule.repository: working day already exists")

	// ErrDayHasMargins is returned when deleting a working day that still owns margins.
	ErrDayHasMargins = errors.New("schedule.repository: working day still has margins")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
