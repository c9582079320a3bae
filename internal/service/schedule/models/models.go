package models

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

// MarginResponse is a single opening range of a working day.
type MarginResponse struct {
	ID       int64  `json:"id"`
	Weekday  int    `json:"weekday"`
	Enabled  bool   `json:"enabled"`
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
}

// WorkingDayResponse is a weekday with its margins.
type WorkingDayResponse struct {
	Weekday int              `json:"weekday"`
	Enabled bool             `json:"enabled"`
	Margins []MarginResponse `json:"margins"`
}

// ScheduleResponse is the full weekly schedule plus closure exceptions.
type ScheduleResponse struct {
	Days       []*WorkingDayResponse `json:"days"`
	Exceptions []*ExceptionResponse  `json:"exceptions"`
}

// ExceptionResponse is a closure window.
type ExceptionResponse struct {
	ID       int64     `json:"id"`
	Reason   string    `json:"reason"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Enabled  bool      `json:"enabled"`
}

// ExceptionListResponse is a list of closure windows.
type ExceptionListResponse struct {
	Exceptions []*ExceptionResponse `json:"exceptions"`
	Total      int                  `json:"total"`
}

// FromDomainMargin converts a domain margin.
func FromDomainMargin(margin domain.Margin) MarginResponse {
	return MarginResponse{
		ID:       margin.ID,
		Weekday:  int(margin.Weekday),
		Enabled:  margin.Enabled,
		OpensAt:  margin.OpensAt.String(),
		ClosesAt: margin.ClosesAt.String(),
	}
}

// FromDomainWorkingDay converts a domain working day.
func FromDomainWorkingDay(day *domain.WorkingDay) *WorkingDayResponse {
	margins := make([]MarginResponse, len(day.Margins))
	for i, margin := range day.Margins {
		margins[i] = FromDomainMargin(margin)
	}
	return &WorkingDayResponse{
		Weekday: int(day.Weekday),
		Enabled: day.Enabled,
		Margins: margins,
	}
}

// FromDomainException converts a domain exception.
func FromDomainException(exc *domain.Exception) *ExceptionResponse {
	return &ExceptionResponse{
		ID:       exc.ID,
		Reason:   exc.Reason,
		StartsAt: exc.StartsAt,
		EndsAt:   exc.EndsAt,
		Enabled:  exc.Enabled,
	}
}

// FromDomainExceptionList converts a list of domain exceptions.
func FromDomainExceptionList(excs []*domain.Exception) *ExceptionListResponse {
	result := make([]*ExceptionResponse, len(excs))
	for i, exc := range excs {
		result[i] = FromDomainException(exc)
	}
	return &ExceptionListResponse{
		Exceptions: result,
		Total:      len(result),
	}
}
