package service

import (
	"context"
	"errors"

	"lexflow-backend/models"
	"lexflow-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ClientService handles business logic for clients
type ClientService struct {
	clientRepo *repository.ClientRepository
}

// ClientServiceOption is a functional option for ClientService
type ClientServiceOption func(*ClientService)

// ClientWithRepository sets the client repository
func ClientWithRepository(repo *repository.ClientRepository) ClientServiceOption {
	return func(s *ClientService) {
		s.clientRepo = repo
	}
}

// NewClientService creates a new client service
func NewClientService(opts ...ClientServiceOption) *ClientService {
	s := &ClientService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if s.clientRepo == nil {
		return nil, errors.New("client repository not set")
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if s.clientRepo == nil {
		return nil, errors.New("client repository not set")
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if s.clientRepo == nil {
		return nil, errors.New("client repository not set")
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves all clients
func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	if s.clientRepo == nil {
		return nil, errors.New("client repository not set")
	}
	return s.clientRepo.List(ctx)
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if s.clientRepo == nil {
		return errors.New("client repository not set")
	}
	return s.clientRepo.Delete(ctx, id)
}
