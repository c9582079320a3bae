package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appt          *domain.Appointment
	byCustomer    []*domain.Appointment
	gotStatus     *domain.AppointmentStatus
	updatedStatus *domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.appt == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appt, nil
}

func (f *fakeAppointmentRepo) GetByCustomer(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.gotStatus = status
	return f.byCustomer, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	if f.appt == nil {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.updatedStatus = &status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              11,
		ServiceConfigID: 1,
		CustomerID:      5,
		ReservedAt:      time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Plate:           "AB123CD",
		FrozenPrice:     100,
		FrozenDeposit:   20,
		Status:          domain.StatusActive,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{appt: activeAppointment()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "active", resp.Status)

	svc = NewService(&fakeAppointmentRepo{}, nopLogger{})
	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByCustomerStatusFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{byCustomer: []*domain.Appointment{activeAppointment()}}
	svc := NewService(repo, nopLogger{})

	status := "cancelled"
	_, err := svc.GetByCustomer(context.Background(), 5, &status)
	require.NoError(t, err)
	require.NotNil(t, repo.gotStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.gotStatus)

	// No filter passes nil through.
	repo.gotStatus = nil
	resp, err := svc.GetByCustomer(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Nil(t, repo.gotStatus)
	assert.Equal(t, 1, resp.Total)

	// Unknown status values are rejected before touching the store.
	bogus := "done"
	_, err = svc.GetByCustomer(context.Background(), 5, &bogus)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &fakeAppointmentRepo{appt: activeAppointment()}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 11))
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
}

func TestComplete(t *testing.T) {
	repo := &fakeAppointmentRepo{appt: activeAppointment()}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Complete(context.Background(), 11))
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
}

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		op   func(*Service) error
	}{
		{name: "cancel a cancelled appointment", from: domain.StatusCancelled,
			op: func(s *Service) error { return s.Cancel(context.Background(), 11) }},
		{name: "cancel a completed appointment", from: domain.StatusCompleted,
			op: func(s *Service) error { return s.Cancel(context.Background(), 11) }},
		{name: "complete a cancelled appointment", from: domain.StatusCancelled,
			op: func(s *Service) error { return s.Complete(context.Background(), 11) }},
		{name: "complete a completed appointment", from: domain.StatusCompleted,
			op: func(s *Service) error { return s.Complete(context.Background(), 11) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := activeAppointment()
			appt.Status = tt.from
			repo := &fakeAppointmentRepo{appt: appt}
			svc := NewService(repo, nopLogger{})

			err := tt.op(svc)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			// The guard fires before any write.
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestTransitionNotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})
	assert.ErrorIs(t, svc.Cancel(context.Background(), 404), ErrAppointmentNotFound)
	assert.ErrorIs(t, svc.Complete(context.Background(), 404), ErrAppointmentNotFound)
}
