package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
	"github.com/ndelucca/lavadero-booking/internal/service/appointments/models"
)

// Service reads appointments and applies status transitions.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates the appointments service.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches an appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByCustomer fetches a customer's appointment history, optionally
// filtered by status.
func (s *Service) GetByCustomer(ctx context.Context, customerID int64, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByCustomer: fetching appointments for customer=%d", customerID)

	var domainStatus *domain.AppointmentStatus
	if status != nil {
		parsed, ok := domain.ParseAppointmentStatus(*status)
		if !ok {
			s.logger.Warn("GetByCustomer: invalid status=%s for customer=%d", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		domainStatus = &parsed
	}

	appts, err := s.appointmentRepo.GetByCustomer(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCustomer: fetched %d appointments for customer=%d", len(appts), customerID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel transitions an active appointment to cancelled. Cancelled is
// terminal: cancelling a cancelled or completed appointment fails.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusCancelled)
}

// Complete transitions an active appointment to completed. Completed is
// terminal.
func (s *Service) Complete(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// transition loads the appointment, checks the state machine and applies
// the status change. The guard runs before the write so terminal
// appointments are never silently overwritten.
func (s *Service) transition(ctx context.Context, id int64, next domain.AppointmentStatus) error {
	s.logger.Info("Transition: appointment id=%d -> %s", id, next)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Transition: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("Transition: appointment id=%d cannot go %s -> %s", id, appt.Status, next)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, appt.Status, next)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: appointment id=%d is now %s", id, next)
	return nil
}
