package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	serviceRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/serviceconfig"
	"github.com/ndelucca/lavadero-booking/pkg/timeutil"
)

// Params are the scheduling constants the generator depends on.
type Params struct {
	// Location is the business's civil timezone.
	Location *time.Location
	// SlotStepMinutes is the candidate granularity.
	SlotStepMinutes int
	// MinLeadTime is how far in the future a slot must start. The same
	// value guards the write path, keeping both paths consistent.
	MinLeadTime time.Duration
}

// UseCase generates the bookable slots for a date and service.
//
// The output offers read-then-display consistency only: another booking can
// commit the moment after the list is produced. The create and reschedule
// use cases re-run the same checks at write time and are the sole authority.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	exceptionRepo   ExceptionRepository
	serviceRepo     ServiceConfigRepository
	params          Params
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the slot generation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	serviceRepo ServiceConfigRepository,
	params Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		exceptionRepo:   exceptionRepo,
		serviceRepo:     serviceRepo,
		params:          params,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute produces the slot list for the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceConfigID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the service; its duration shapes every candidate
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceConfigID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceConfigID)
			return nil, ErrServiceNotFound
		}
		return nil, uc.storeFailure("get service", err)
	}

	// 3. Resolve the working day; a missing or disabled day is a closed
	//    day, which is a normal empty result, not an error
	weekday := req.Date.Weekday()
	day, err := uc.scheduleRepo.GetByWeekday(ctx, weekday, true)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingDayNotFound) {
			uc.logger.Info("GetAvailableSlots: no working day for %s, closed", weekday)
			return uc.closedResponse(req), nil
		}
		return nil, uc.storeFailure("get working day", err)
	}
	if !day.IsOpen() {
		uc.logger.Info("GetAvailableSlots: %s is disabled or has no enabled margins, closed", weekday)
		return uc.closedResponse(req), nil
	}

	// 4. Scope the day window in the business timezone
	dayStart, dayEnd := timeutil.DayBounds(req.Date, uc.params.Location)

	// 5. Load the day's closures and active appointments
	exceptions, err := uc.exceptionRepo.ListOverlapping(ctx, dayStart, dayEnd, true)
	if err != nil {
		return nil, uc.storeFailure("list exceptions", err)
	}

	appointments, err := uc.appointmentRepo.GetActiveInRange(ctx, dayStart, dayEnd, req.ExcludeAppointmentID)
	if err != nil {
		return nil, uc.storeFailure("get appointments", err)
	}

	// 6. Walk the margins
	slots, err := buildSlots(
		req.Date,
		day,
		service.DurationMinutes,
		uc.params.SlotStepMinutes,
		appointments,
		exceptions,
		now,
		uc.params.MinLeadTime,
		uc.params.Location,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s",
		len(slots), req.ServiceConfigID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceConfigID: req.ServiceConfigID,
		Closed:          false,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) closedResponse(req *Request) *Response {
	return &Response{
		Date:            req.Date,
		ServiceConfigID: req.ServiceConfigID,
		Closed:          true,
		Slots:           []domain.Slot{},
	}
}

func (uc *UseCase) storeFailure(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		uc.logger.Error("GetAvailableSlots: %s timed out: %v", op, err)
		return fmt.Errorf("%w: %s", ErrStoreTimeout, op)
	}
	uc.logger.Error("GetAvailableSlots: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
