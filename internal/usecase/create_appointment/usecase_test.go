package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
)

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
	nextID    int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *appt
	stored.ID = f.nextID
	if stored.ID == 0 {
		stored.ID = 1
	}
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetActiveInRange(_ context.Context, _, _ time.Time, _ *int64) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeScheduleRepo struct {
	day *domain.WorkingDay
	err error
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, _ time.Weekday, _ bool) (*domain.WorkingDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.day, nil
}

type fakeExceptionRepo struct {
	exceptions []*domain.Exception
}

func (f *fakeExceptionRepo) ListOverlapping(_ context.Context, _, _ time.Time, _ bool) ([]*domain.Exception, error) {
	return f.exceptions, nil
}

type fakeServiceRepo struct {
	service *domain.ServiceConfig
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.ServiceConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

// passthroughTxManager runs the unit of work without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	return loc
}

var tuesday = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func openTuesday() *domain.WorkingDay {
	return &domain.WorkingDay{
		Weekday: time.Tuesday,
		Enabled: true,
		Margins: []domain.Margin{
			{ID: 1, Weekday: time.Tuesday, Enabled: true, OpensAt: "09:00", ClosesAt: "13:00"},
		},
	}
}

func washService() *domain.ServiceConfig {
	return &domain.ServiceConfig{ID: 1, Name: "Basic wash", DurationMinutes: 30, Price: 100, Deposit: 20, Active: true}
}

func newTestUseCase(
	appts *fakeAppointmentRepo,
	sched *fakeScheduleRepo,
	excs *fakeExceptionRepo,
	svcs *fakeServiceRepo,
	now time.Time,
	loc *time.Location,
) *UseCase {
	uc := NewUseCase(appts, sched, excs, svcs, passthroughTxManager{}, Params{
		Location:    loc,
		MinLeadTime: 10 * time.Minute,
	}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceConfigID: 1,
		CustomerID:      5,
		Date:            tuesday,
		StartTime:       "10:00",
		Plate:           "ab123cd",
	}
}

func TestExecuteCreatesAppointment(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	appts := &fakeAppointmentRepo{}
	uc := newTestUseCase(appts, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:00 wall clock in Buenos Aires is 13:00 UTC.
	assert.Equal(t, time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC), resp.ReservedAt)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	// Plate stored normalized.
	assert.Equal(t, "AB123CD", resp.Plate)
	// Price and deposit frozen from the service configuration.
	assert.Equal(t, 100.0, resp.FrozenPrice)
	assert.Equal(t, 20.0, resp.FrozenDeposit)
	require.NotNil(t, appts.created)
	assert.Equal(t, domain.StatusActive, appts.created.Status)
}

func TestExecuteLeadTimeGate(t *testing.T) {
	loc := testLocation(t)
	appts := &fakeAppointmentRepo{}
	uc := newTestUseCase(appts, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, time.Time{}, loc)

	// Requested start is 13:00 UTC. Five minutes ahead fails, eleven passes.
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 12, 55, 0, 0, time.UTC)}
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInsufficientLeadTime)

	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 12, 49, 0, 0, time.UTC)}
	_, err = uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteLeadTimeBoundaryFails(t *testing.T) {
	loc := testLocation(t)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, time.Date(2026, 9, 15, 12, 50, 0, 0, time.UTC), loc)

	// now + lead time lands exactly on the requested start; the comparison
	// is strict so the boundary is rejected.
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInsufficientLeadTime)
}

func TestExecuteSurfacesExceptionReason(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	closure := &domain.Exception{
		ID:       3,
		Reason:   "feriado nacional",
		StartsAt: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		Enabled:  true,
	}

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{exceptions: []*domain.Exception{closure}}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	var conflict *ExceptionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "feriado nacional", conflict.Reason)
}

func TestExecuteClosedDay(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrWorkingDayNotFound}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecuteOutsideMargin(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	// 12:45 + 30min spills past the 13:00 close.
	req := validRequest()
	req.StartTime = "12:45"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideMargin)

	// Ending exactly at close is allowed.
	req.StartTime = "12:30"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteSlotTaken(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	taken := &domain.Appointment{
		ID:              9,
		ReservedAt:      time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusActive,
	}

	uc := newTestUseCase(&fakeAppointmentRepo{existing: []*domain.Appointment{taken}}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecuteCancelledAppointmentDoesNotBlock(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	cancelled := &domain.Appointment{
		ID:              9,
		ReservedAt:      time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusCancelled,
	}

	uc := newTestUseCase(&fakeAppointmentRepo{existing: []*domain.Appointment{cancelled}}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteTouchingAppointmentsAllowed(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	// Occupies [10:30, 11:00) local; booking [10:00, 10:30) touches it.
	adjacent := &domain.Appointment{
		ID:              9,
		ReservedAt:      time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusActive,
	}

	uc := newTestUseCase(&fakeAppointmentRepo{existing: []*domain.Appointment{adjacent}}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteConcurrentBackstop(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecuteValidation(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{day: openTuesday()}, &fakeExceptionRepo{}, &fakeServiceRepo{service: washService()}, now, loc)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing service", mutate: func(r *Request) { r.ServiceConfigID = 0 }},
		{name: "missing customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:00" }},
		{name: "blank plate", mutate: func(r *Request) { r.Plate = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
