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
	ErrCaseNotFound   = errors.New("case not found")
	ErrClientNotFound = errors.New("client not found")
	ErrForbidden      = errors.New("access denied")
)

// CaseService handles business logic and access control for cases
type CaseService struct {
	caseRepo   *repository.CaseRepository
	clientRepo *repository.ClientRepository
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// WithCaseRepository sets the case repository
func WithCaseRepository(repo *repository.CaseRepository) CaseServiceOption {
	return func(s *CaseService) {
		s.caseRepo = repo
	}
}

// WithClientRepository sets the client repository
func WithClientRepository(repo *repository.ClientRepository) CaseServiceOption {
	return func(s *CaseService) {
		s.clientRepo = repo
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CaseForUser loads a case and enforces visibility: staff see everything,
// client users only cases bound to their own client record.
func (s *CaseService) CaseForUser(ctx context.Context, id uuid.UUID, user *models.User) (*models.Case, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	if user != nil && user.Role == models.RoleClient {
		if s.clientRepo == nil {
			return nil, ErrForbidden
		}
		client, err := s.clientRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		if c.ClientID == nil || *c.ClientID != client.ID {
			return nil, ErrForbidden
		}
	}

	return c, nil
}

// CreateCaseRequest represents a request to create a case
type CreateCaseRequest struct {
	Case *models.Case
}

// CreateCaseResult represents the result of creating a case
type CreateCaseResult struct {
	Case *models.Case
}

// CreateCase creates a new case with default values
func (s *CaseService) CreateCase(ctx context.Context, req CreateCaseRequest) (*CreateCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	c := req.Case
	if c.Status == "" {
		c.Status = models.CaseStatusOpen
	}
	if c.Attachments == nil {
		c.Attachments = models.CaseAttachments{}
	}
	if c.Analysis == nil {
		c.Analysis = make(models.AnalysisDocument)
	}

	err := s.caseRepo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	return &CreateCaseResult{Case: c}, nil
}

// GetCaseRequest represents a request to get a case
type GetCaseRequest struct {
	ID   uuid.UUID
	User *models.User
}

// GetCaseResult represents the result of getting a case
type GetCaseResult struct {
	Case *models.Case
}

// GetCase retrieves a case by ID with access control
func (s *CaseService) GetCase(ctx context.Context, req GetCaseRequest) (*GetCaseResult, error) {
	c, err := s.CaseForUser(ctx, req.ID, req.User)
	if err != nil {
		return nil, err
	}

	return &GetCaseResult{Case: c}, nil
}

// UpdateCaseRequest represents a request to update a case
type UpdateCaseRequest struct {
	Case *models.Case
}

// UpdateCaseResult represents the result of updating a case
type UpdateCaseResult struct {
	Case *models.Case
}

// UpdateCase updates a case. Archiving stamps the closing date once.
func (s *CaseService) UpdateCase(ctx context.Context, req UpdateCaseRequest) (*UpdateCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	c := req.Case
	if c.Status == models.CaseStatusArchived && c.ClosedAt == nil {
		now := time.Now()
		c.ClosedAt = &now
	}

	err := s.caseRepo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	return &UpdateCaseResult{Case: c}, nil
}

// ListCasesRequest represents a request to list cases
type ListCasesRequest struct {
	User     *models.User
	Status   *models.CaseStatus
	LawyerID *uuid.UUID
	ClientID *uuid.UUID
	Limit    int
	Offset   int
}

// ListCasesResult represents the result of listing cases
type ListCasesResult struct {
	Cases []*models.Case
}

// ListCases lists cases visible to the user. Client users are always
// scoped to their own client record.
func (s *CaseService) ListCases(ctx context.Context, req ListCasesRequest) (*ListCasesResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	clientID := req.ClientID
	if req.User != nil && req.User.Role == models.RoleClient {
		if s.clientRepo == nil {
			return nil, ErrForbidden
		}
		client, err := s.clientRepo.GetByUserID(ctx, req.User.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		clientID = &client.ID
	}

	cases, err := s.caseRepo.List(ctx, req.Status, req.LawyerID, clientID, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &ListCasesResult{Cases: cases}, nil
}

// AddAttachmentRequest represents a request to register an attachment on a case
type AddAttachmentRequest struct {
	CaseID     uuid.UUID
	User       *models.User
	Attachment models.CaseAttachment
}

// AddAttachmentResult represents the result of registering an attachment
type AddAttachmentResult struct {
	Case *models.Case
}

// AddAttachment appends one attachment reference to the case record
func (s *CaseService) AddAttachment(ctx context.Context, req AddAttachmentRequest) (*AddAttachmentResult, error) {
	c, err := s.CaseForUser(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	c.Attachments = append(c.Attachments, req.Attachment)
	if err := s.caseRepo.UpdateAttachments(ctx, c.ID, c.Attachments); err != nil {
		return nil, err
	}

	return &AddAttachmentResult{Case: c}, nil
}

// DeleteCaseRequest represents a request to delete a case
type DeleteCaseRequest struct {
	ID uuid.UUID
}

// DeleteCaseResult represents the result of deleting a case
type DeleteCaseResult struct{}

// DeleteCase deletes a case
func (s *CaseService) DeleteCase(ctx context.Context, req DeleteCaseRequest) (*DeleteCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	err := s.caseRepo.Delete(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &DeleteCaseResult{}, nil
}
