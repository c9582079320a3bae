package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	"github.com/ndelucca/lavadero-booking/pkg/ptr"
	"github.com/ndelucca/lavadero-booking/pkg/timeutil"
)

// Params are the scheduling constants the validator depends on.
type Params struct {
	Location    *time.Location
	MinLeadTime time.Duration
}

// UseCase moves an active appointment. It re-runs the full booking check
// set against the new interval inside a serializable transaction, with the
// appointment itself excluded from the occupancy set so it does not block
// its own move. The frozen price and deposit are never recomputed.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	exceptionRepo   ExceptionRepository
	txManager       TransactionManager
	params          Params
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the reschedule use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	txManager TransactionManager,
	params Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		exceptionRepo:   exceptionRepo,
		txManager:       txManager,
		params:          params,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates and applies the move.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d", req.AppointmentID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. The appointment must exist and still be active
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			return uc.storeFailure("get appointment", err)
		}
		if !appt.IsActive() {
			uc.logger.Warn("RescheduleAppointment: id=%d has terminal status=%s",
				req.AppointmentID, appt.Status)
			return ErrNotActive
		}

		newStart := appt.ReservedAt
		if req.Date != nil && req.StartTime != nil {
			startMinutes, err := req.StartTime.Minutes()
			if err != nil {
				return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
			}
			newStart = timeutil.AtCivilTime(*req.Date, startMinutes, uc.params.Location)
		}
		newEnd := newStart.Add(time.Duration(appt.DurationMinutes) * time.Minute)

		// 3. Full booking check set, only when the time actually moves
		if !newStart.Equal(appt.ReservedAt) {
			if err := validateLeadTime(newStart, now, uc.params.MinLeadTime); err != nil {
				uc.logger.Warn("RescheduleAppointment: lead time check failed: %v", err)
				return err
			}

			exceptions, err := uc.exceptionRepo.ListOverlapping(txCtx, newStart, newEnd, true)
			if err != nil {
				return uc.storeFailure("list exceptions", err)
			}
			if len(exceptions) > 0 {
				uc.logger.Warn("RescheduleAppointment: blocked by exception id=%d (%s)",
					exceptions[0].ID, exceptions[0].Reason)
				return &ExceptionConflictError{Reason: exceptions[0].Reason}
			}

			weekday := timeutil.CivilWeekday(newStart, uc.params.Location)
			day, err := uc.scheduleRepo.GetByWeekday(txCtx, weekday, true)
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrWorkingDayNotFound) {
					uc.logger.Warn("RescheduleAppointment: no working day for %s", weekday)
					return ErrClosedDay
				}
				return uc.storeFailure("get working day", err)
			}
			if !day.IsOpen() {
				uc.logger.Warn("RescheduleAppointment: %s is disabled", weekday)
				return ErrClosedDay
			}

			if err := validateWithinMargin(day, newStart, newEnd, uc.params.Location); err != nil {
				uc.logger.Warn("RescheduleAppointment: margin check failed: %v", err)
				return err
			}

			dayStart, dayEnd := timeutil.DayBounds(newStart.In(uc.params.Location), uc.params.Location)
			appointments, err := uc.appointmentRepo.GetActiveInRange(txCtx, dayStart, dayEnd, ptr.Ptr(appt.ID))
			if err != nil {
				return uc.storeFailure("get appointments", err)
			}
			if conflict := findOverlapping(newStart, newEnd, appointments); conflict != nil {
				uc.logger.Warn("RescheduleAppointment: slot taken by appointment id=%d", conflict.ID)
				return fmt.Errorf("%w: conflicts with %s-%s",
					ErrSlotTaken,
					timeutil.CivilTime(conflict.ReservedAt, uc.params.Location),
					timeutil.CivilTime(conflict.EndsAt(), uc.params.Location))
			}
		}

		var plate *string
		if req.Plate != nil {
			plate = ptr.Ptr(domain.NormalizePlate(*req.Plate))
		}

		updated, err := uc.appointmentRepo.UpdateTime(txCtx, appt.ID, newStart, plate)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: concurrent booking", ErrSlotTaken)
			}
			return uc.storeFailure("update appointment", err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: id=%d moved to %s",
		result.ID, result.ReservedAt.Format(time.RFC3339))

	return &Response{
		ID:              result.ID,
		ServiceConfigID: result.ServiceConfigID,
		CustomerID:      result.CustomerID,
		ReservedAt:      result.ReservedAt,
		DurationMinutes: result.DurationMinutes,
		Plate:           result.Plate,
		FrozenPrice:     result.FrozenPrice,
		FrozenDeposit:   result.FrozenDeposit,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) storeFailure(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		uc.logger.Error("RescheduleAppointment: %s timed out: %v", op, err)
		return fmt.Errorf("%w: %s", ErrStoreTimeout, op)
	}
	uc.logger.Error("RescheduleAppointment: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
