package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	exceptionRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/exception"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule/models"
	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// Service manages the weekly schedule: working days, their margins and
// closure exceptions.
type Service struct {
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	logger        Logger
}

// NewService creates the schedule service.
func NewService(scheduleRepo ScheduleRepository, exceptionRepo ExceptionRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		logger:        logger,
	}
}

// GetSchedule returns every configured working day with all of its
// margins, plus every exception, disabled entries included.
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching full schedule")

	days, err := s.scheduleRepo.ListDays(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: repository error listing days: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	excs, err := s.exceptionRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: repository error listing exceptions: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	dayResponses := make([]*models.WorkingDayResponse, len(days))
	for i, day := range days {
		dayResponses[i] = models.FromDomainWorkingDay(day)
	}
	excResponses := make([]*models.ExceptionResponse, len(excs))
	for i, exc := range excs {
		excResponses[i] = models.FromDomainException(exc)
	}

	return &models.ScheduleResponse{
		Days:       dayResponses,
		Exceptions: excResponses,
	}, nil
}

// UpsertWorkingDay creates the working day for a weekday or, if it
// already exists, updates its enabled flag. At most one working day per
// weekday exists.
func (s *Service) UpsertWorkingDay(ctx context.Context, weekday time.Weekday, enabled bool) error {
	if weekday < time.Sunday || weekday > time.Saturday {
		return fmt.Errorf("%w: invalid weekday %d", ErrInvalidInput, weekday)
	}
	s.logger.Info("UpsertWorkingDay: weekday=%s enabled=%t", weekday, enabled)

	err := s.scheduleRepo.CreateDay(ctx, weekday, enabled)
	if err == nil {
		return nil
	}
	if !errors.Is(err, scheduleRepo.ErrDuplicateDay) {
		s.logger.Error("UpsertWorkingDay: repository error for weekday=%s: %v", weekday, err)
		return fmt.Errorf("%w: UpsertWorkingDay - repository error: %v", ErrInternal, err)
	}

	if err := s.scheduleRepo.SetDayEnabled(ctx, weekday, enabled); err != nil {
		s.logger.Error("UpsertWorkingDay: repository error updating weekday=%s: %v", weekday, err)
		return fmt.Errorf("%w: UpsertWorkingDay - repository error: %v", ErrInternal, err)
	}
	return nil
}

// DeleteWorkingDay removes a working day. Days that still own margins
// cannot be removed; the margins have to go first.
func (s *Service) DeleteWorkingDay(ctx context.Context, weekday time.Weekday) error {
	s.logger.Info("DeleteWorkingDay: weekday=%s", weekday)

	err := s.scheduleRepo.DeleteDay(ctx, weekday)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrWorkingDayNotFound):
			s.logger.Warn("DeleteWorkingDay: weekday=%s not found", weekday)
			return ErrWorkingDayNotFound
		case errors.Is(err, scheduleRepo.ErrDayHasMargins):
			s.logger.Warn("DeleteWorkingDay: weekday=%s still has margins", weekday)
			return ErrDayHasMargins
		default:
			s.logger.Error("DeleteWorkingDay: repository error for weekday=%s: %v", weekday, err)
			return fmt.Errorf("%w: DeleteWorkingDay - repository error: %v", ErrInternal, err)
		}
	}
	return nil
}

// CreateMargin adds an opening range to an existing working day after
// validating the range against every other margin of that day.
func (s *Service) CreateMargin(ctx context.Context, weekday time.Weekday, opensAt, closesAt string, enabled bool) (*models.MarginResponse, error) {
	s.logger.Info("CreateMargin: weekday=%s %s-%s", weekday, opensAt, closesAt)

	margin, err := s.buildMargin(weekday, opensAt, closesAt, enabled)
	if err != nil {
		return nil, err
	}

	if _, err := s.scheduleRepo.GetByWeekday(ctx, weekday, false); err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingDayNotFound) {
			s.logger.Warn("CreateMargin: weekday=%s not configured", weekday)
			return nil, ErrWorkingDayNotFound
		}
		s.logger.Error("CreateMargin: repository error for weekday=%s: %v", weekday, err)
		return nil, fmt.Errorf("%w: CreateMargin - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOverlap(ctx, margin, nil); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.CreateMargin(ctx, margin)
	if err != nil {
		s.logger.Error("CreateMargin: repository error for weekday=%s: %v", weekday, err)
		return nil, fmt.Errorf("%w: CreateMargin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMargin: created margin id=%d for weekday=%s", created.ID, weekday)
	response := models.FromDomainMargin(*created)
	return &response, nil
}

// UpdateMargin replaces the range and enabled flag of an existing
// margin. The margin itself is excluded from the overlap check.
func (s *Service) UpdateMargin(ctx context.Context, id int64, opensAt, closesAt string, enabled bool) (*models.MarginResponse, error) {
	s.logger.Info("UpdateMargin: margin id=%d %s-%s", id, opensAt, closesAt)

	existing, err := s.scheduleRepo.GetMarginByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrMarginNotFound) {
			s.logger.Warn("UpdateMargin: margin id=%d not found", id)
			return nil, ErrMarginNotFound
		}
		s.logger.Error("UpdateMargin: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMargin - repository error: %v", ErrInternal, err)
	}

	margin, err := s.buildMargin(existing.Weekday, opensAt, closesAt, enabled)
	if err != nil {
		return nil, err
	}
	margin.ID = existing.ID

	if err := s.checkOverlap(ctx, margin, &existing.ID); err != nil {
		return nil, err
	}

	updated, err := s.scheduleRepo.UpdateMargin(ctx, margin)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrMarginNotFound) {
			return nil, ErrMarginNotFound
		}
		s.logger.Error("UpdateMargin: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMargin - repository error: %v", ErrInternal, err)
	}

	response := models.FromDomainMargin(*updated)
	return &response, nil
}

// DeleteMargin removes a margin.
func (s *Service) DeleteMargin(ctx context.Context, id int64) error {
	s.logger.Info("DeleteMargin: margin id=%d", id)

	if err := s.scheduleRepo.DeleteMargin(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrMarginNotFound) {
			s.logger.Warn("DeleteMargin: margin id=%d not found", id)
			return ErrMarginNotFound
		}
		s.logger.Error("DeleteMargin: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMargin - repository error: %v", ErrInternal, err)
	}
	return nil
}

// CreateException records a closure window over a UTC instant range.
func (s *Service) CreateException(ctx context.Context, reason string, startsAt, endsAt time.Time) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: %s - %s", startsAt.Format(time.RFC3339), endsAt.Format(time.RFC3339))

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxExceptionReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxExceptionReasonLength)
	}
	if !startsAt.Before(endsAt) {
		return nil, fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidInput)
	}

	created, err := s.exceptionRepo.Create(ctx, &domain.Exception{
		Reason:   reason,
		StartsAt: startsAt.UTC(),
		EndsAt:   endsAt.UTC(),
		Enabled:  true,
	})
	if err != nil {
		s.logger.Error("CreateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// ListExceptions returns every exception, disabled ones included.
func (s *Service) ListExceptions(ctx context.Context) (*models.ExceptionListResponse, error) {
	excs, err := s.exceptionRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListExceptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExceptions - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainExceptionList(excs), nil
}

// DeleteException disables an exception, or removes it entirely when
// hard is set. Soft delete keeps the row for auditability.
func (s *Service) DeleteException(ctx context.Context, id int64, hard bool) error {
	s.logger.Info("DeleteException: exception id=%d hard=%t", id, hard)

	var err error
	if hard {
		err = s.exceptionRepo.Delete(ctx, id)
	} else {
		err = s.exceptionRepo.SetEnabled(ctx, id, false)
	}
	if err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}
	return nil
}

// buildMargin parses and validates a margin range. Closing at or before
// opening is rejected, so zero-length margins cannot exist.
func (s *Service) buildMargin(weekday time.Weekday, opensAt, closesAt string, enabled bool) (*domain.Margin, error) {
	opens, err := types.NewTimeStringFromString(opensAt)
	if err != nil {
		return nil, fmt.Errorf("%w: opensAt: %v", ErrInvalidInput, err)
	}
	closes, err := types.NewTimeStringFromString(closesAt)
	if err != nil {
		return nil, fmt.Errorf("%w: closesAt: %v", ErrInvalidInput, err)
	}
	if !opens.IsBefore(closes) {
		return nil, ErrInvalidRange
	}
	return &domain.Margin{
		Weekday:  weekday,
		Enabled:  enabled,
		OpensAt:  opens,
		ClosesAt: closes,
	}, nil
}

// checkOverlap rejects margins that overlap any other margin of the same
// day. Disabled margins still reserve their range, so they count too.
// Touching endpoints do not overlap.
func (s *Service) checkOverlap(ctx context.Context, margin *domain.Margin, excludeID *int64) error {
	existing, err := s.scheduleRepo.ListMargins(ctx, margin.Weekday, false)
	if err != nil {
		s.logger.Error("checkOverlap: repository error for weekday=%s: %v", margin.Weekday, err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	opens, err := margin.OpensAt.Minutes()
	if err != nil {
		return fmt.Errorf("%w: opensAt: %v", ErrInvalidInput, err)
	}
	closes, err := margin.ClosesAt.Minutes()
	if err != nil {
		return fmt.Errorf("%w: closesAt: %v", ErrInvalidInput, err)
	}

	for _, other := range existing {
		if excludeID != nil && other.ID == *excludeID {
			continue
		}
		otherOpens, err := other.OpensAt.Minutes()
		if err != nil {
			return fmt.Errorf("%w: checkOverlap - stored margin id=%d: %v", ErrInternal, other.ID, err)
		}
		otherCloses, err := other.ClosesAt.Minutes()
		if err != nil {
			return fmt.Errorf("%w: checkOverlap - stored margin id=%d: %v", ErrInternal, other.ID, err)
		}
		if domain.RangesOverlap(opens, closes, otherOpens, otherCloses) {
			s.logger.Warn("checkOverlap: %s-%s overlaps margin id=%d (%s-%s)",
				margin.OpensAt, margin.ClosesAt, other.ID, other.OpensAt, other.ClosesAt)
			return &MarginOverlapError{
				OpensAt:  other.OpensAt.String(),
				ClosesAt: other.ClosesAt.String(),
			}
		}
	}
	return nil
}
