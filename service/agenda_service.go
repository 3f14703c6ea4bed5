package service

import (
	"context"
	"errors"
	"time"

	"lexflow-backend/models"
	"lexflow-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeWindow   = errors.New("appointment end must come after start")
)

// AgendaService handles business logic for appointments
type AgendaService struct {
	apptRepo *repository.AppointmentRepository
}

// AgendaServiceOption is a functional option for AgendaService
type AgendaServiceOption func(*AgendaService)

// AgendaWithRepository sets the appointment repository
func AgendaWithRepository(repo *repository.AppointmentRepository) AgendaServiceOption {
	return func(s *AgendaService) {
		s.apptRepo = repo
	}
}

// NewAgendaService creates a new agenda service
func NewAgendaService(opts ...AgendaServiceOption) *AgendaService {
	s := &AgendaService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAppointment creates a new appointment
func (s *AgendaService) CreateAppointment(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if s.apptRepo == nil {
		return nil, errors.New("appointment repository not set")
	}
	if !appt.EndsAt.After(appt.StartsAt) {
		return nil, ErrInvalidTimeWindow
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}

	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// GetAppointment retrieves an appointment by ID
func (s *AgendaService) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if s.apptRepo == nil {
		return nil, errors.New("appointment repository not set")
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// UpdateAppointment updates an appointment
func (s *AgendaService) UpdateAppointment(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if s.apptRepo == nil {
		return nil, errors.New("appointment repository not set")
	}
	if !appt.EndsAt.After(appt.StartsAt) {
		return nil, ErrInvalidTimeWindow
	}

	if err := s.apptRepo.Update(ctx, appt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// ListWeek retrieves a lawyer's appointments for the week containing the
// given day
func (s *AgendaService) ListWeek(ctx context.Context, lawyerID uuid.UUID, day time.Time) ([]*models.Appointment, error) {
	if s.apptRepo == nil {
		return nil, errors.New("appointment repository not set")
	}

	start := day.Truncate(24 * time.Hour)
	start = start.AddDate(0, 0, -int(start.Weekday()))
	return s.apptRepo.ListByLawyer(ctx, lawyerID, start, start.AddDate(0, 0, 7))
}

// DeleteAppointment deletes an appointment
func (s *AgendaService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if s.apptRepo == nil {
		return errors.New("appointment repository not set")
	}
	return s.apptRepo.Delete(ctx, id)
}
