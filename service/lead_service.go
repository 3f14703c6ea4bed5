package service

import (
	"context"
	"errors"

	"lexflow-backend/models"
	"lexflow-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LeadService handles business logic for intake leads
type LeadService struct {
	leadRepo *repository.LeadRepository
}

// LeadServiceOption is a functional option for LeadService
type LeadServiceOption func(*LeadService)

// LeadWithRepository sets the lead repository
func LeadWithRepository(repo *repository.LeadRepository) LeadServiceOption {
	return func(s *LeadService) {
		s.leadRepo = repo
	}
}

// NewLeadService creates a new lead service
func NewLeadService(opts ...LeadServiceOption) *LeadService {
	s := &LeadService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateLead registers an intake lead. Intake forms arrive without a
// status; they start as new.
func (s *LeadService) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if s.leadRepo == nil {
		return nil, errors.New("lead repository not set")
	}

	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.Documents == nil {
		lead.Documents = models.LeadDocuments{}
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	if s.leadRepo == nil {
		return nil, errors.New("lead repository not set")
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// UpdateLead updates a lead
func (s *LeadService) UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if s.leadRepo == nil {
		return nil, errors.New("lead repository not set")
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// ListLeads retrieves leads, optionally filtered by status
func (s *LeadService) ListLeads(ctx context.Context, status *models.LeadStatus, limit, offset int) ([]*models.Lead, error) {
	if s.leadRepo == nil {
		return nil, errors.New("lead repository not set")
	}
	return s.leadRepo.List(ctx, status, limit, offset)
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	if s.leadRepo == nil {
		return errors.New("lead repository not set")
	}
	return s.leadRepo.Delete(ctx, id)
}
