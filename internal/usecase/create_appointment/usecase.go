package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	serviceRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/serviceconfig"
	"github.com/ndelucca/lavadero-booking/pkg/timeutil"
)

// Params are the scheduling constants the validator depends on.
type Params struct {
	Location    *time.Location
	MinLeadTime time.Duration
}

// UseCase creates an appointment. It is the write-path authority: every
// rule the slot generator applies is re-run here against the freshest data,
// inside a serializable transaction whose day read locks the rows, so two
// concurrent requests for the same interval cannot both commit.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	exceptionRepo   ExceptionRepository
	serviceRepo     ServiceConfigRepository
	txManager       TransactionManager
	params          Params
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the appointment creation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	serviceRepo ServiceConfigRepository,
	txManager TransactionManager,
	params Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		exceptionRepo:   exceptionRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		params:          params,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates and persists the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceConfigID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Compose the requested instant from the civil date and time in the
	//    business timezone
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	requestedStart := timeutil.AtCivilTime(req.Date, startMinutes, uc.params.Location)

	// 3. Lead time gate, before touching the store
	if err := validateLeadTime(requestedStart, now, uc.params.MinLeadTime); err != nil {
		uc.logger.Warn("CreateAppointment: lead time check failed: %v", err)
		return nil, err
	}

	// 4. Resolve the service and compute the occupied interval
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceConfigID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceConfigID)
			return nil, ErrServiceNotFound
		}
		return nil, uc.storeFailure("get service", err)
	}
	requestedEnd := requestedStart.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Appointment

	// 5. Re-check everything and insert atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Closures win over everything; surface the first reason
		exceptions, err := uc.exceptionRepo.ListOverlapping(txCtx, requestedStart, requestedEnd, true)
		if err != nil {
			return uc.storeFailure("list exceptions", err)
		}
		if len(exceptions) > 0 {
			uc.logger.Warn("CreateAppointment: blocked by exception id=%d (%s)",
				exceptions[0].ID, exceptions[0].Reason)
			return &ExceptionConflictError{Reason: exceptions[0].Reason}
		}

		// 5.2. Working day of the civil weekday
		weekday := timeutil.CivilWeekday(requestedStart, uc.params.Location)
		day, err := uc.scheduleRepo.GetByWeekday(txCtx, weekday, true)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrWorkingDayNotFound) {
				uc.logger.Warn("CreateAppointment: no working day for %s", weekday)
				return ErrClosedDay
			}
			return uc.storeFailure("get working day", err)
		}
		if !day.IsOpen() {
			uc.logger.Warn("CreateAppointment: %s is disabled", weekday)
			return ErrClosedDay
		}

		// 5.3. The whole wash must fit inside one enabled margin
		if err := validateWithinMargin(day, requestedStart, requestedEnd, uc.params.Location); err != nil {
			uc.logger.Warn("CreateAppointment: margin check failed: %v", err)
			return err
		}

		// 5.4. Day-scope overlap check under FOR UPDATE row locks
		dayStart, dayEnd := timeutil.DayBounds(requestedStart.In(uc.params.Location), uc.params.Location)
		appointments, err := uc.appointmentRepo.GetActiveInRange(txCtx, dayStart, dayEnd, nil)
		if err != nil {
			return uc.storeFailure("get appointments", err)
		}
		if conflict := findOverlapping(requestedStart, requestedEnd, appointments); conflict != nil {
			uc.logger.Warn("CreateAppointment: slot taken by appointment id=%d", conflict.ID)
			return fmt.Errorf("%w: conflicts with %s-%s",
				ErrSlotTaken,
				timeutil.CivilTime(conflict.ReservedAt, uc.params.Location),
				timeutil.CivilTime(conflict.EndsAt(), uc.params.Location))
		}

		// 5.5. Persist with the price-lock snapshot
		appt := &domain.Appointment{
			ServiceConfigID: req.ServiceConfigID,
			CustomerID:      req.CustomerID,
			ReservedAt:      requestedStart,
			DurationMinutes: service.DurationMinutes,
			Plate:           domain.NormalizePlate(req.Plate),
			FrozenPrice:     service.Price,
			FrozenDeposit:   service.Deposit,
			Status:          domain.StatusActive,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Unique-index backstop fired under a concurrent write.
				return fmt.Errorf("%w: concurrent booking", ErrSlotTaken)
			}
			return uc.storeFailure("create appointment", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d at %s",
		result.ID, result.ReservedAt.Format(time.RFC3339))

	return toResponse(result), nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		ServiceConfigID: appt.ServiceConfigID,
		CustomerID:      appt.CustomerID,
		ReservedAt:      appt.ReservedAt,
		DurationMinutes: appt.DurationMinutes,
		Plate:           appt.Plate,
		FrozenPrice:     appt.FrozenPrice,
		FrozenDeposit:   appt.FrozenDeposit,
		Status:          string(appt.Status),
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

func (uc *UseCase) storeFailure(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		uc.logger.Error("CreateAppointment: %s timed out: %v", op, err)
		return fmt.Errorf("%w: %s", ErrStoreTimeout, op)
	}
	uc.logger.Error("CreateAppointment: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
