package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("schedule service: invalid input")
	ErrInvalidRange       = errors.New("schedule service: closing time must be after opening time")
	ErrWorkingDayNotFound = errors.New("schedule service: working day not found")
	ErrMarginNotFound     = errors.New("schedule service: margin not found")
	ErrExceptionNotFound  = errors.New("schedule service: exception not found")
	ErrDuplicateDay       = errors.New("schedule service: working day already exists")
	ErrDayHasMargins      = errors.New("schedule service: working day still has margins")
	ErrInternal           = errors.New("schedule service: internal error")
)

// MarginOverlapError reports the existing margin a new or updated
// range collides with.
type MarginOverlapError struct {
	OpensAt  string
	ClosesAt string
}

func (e *MarginOverlapError) Error() string {
	return fmt.Sprintf("schedule service: margin overlaps existing range %s-%s", e.OpensAt, e.ClosesAt)
}
