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
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidAmount   = errors.New("invoice amount must be positive")
)

// FinancialService handles business logic for invoices
type FinancialService struct {
	invoiceRepo *repository.InvoiceRepository
}

// FinancialServiceOption is a functional option for FinancialService
type FinancialServiceOption func(*FinancialService)

// FinancialWithRepository sets the invoice repository
func FinancialWithRepository(repo *repository.InvoiceRepository) FinancialServiceOption {
	return func(s *FinancialService) {
		s.invoiceRepo = repo
	}
}

// NewFinancialService creates a new financial service
func NewFinancialService(opts ...FinancialServiceOption) *FinancialService {
	s := &FinancialService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice creates a new invoice
func (s *FinancialService) CreateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	if s.invoiceRepo == nil {
		return nil, errors.New("invoice repository not set")
	}
	if inv.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInvoice retrieves an invoice by ID
func (s *FinancialService) GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	if s.invoiceRepo == nil {
		return nil, errors.New("invoice repository not set")
	}

	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

// MarkInvoicePaid marks an invoice as paid now
func (s *FinancialService) MarkInvoicePaid(ctx context.Context, id uuid.UUID) error {
	if s.invoiceRepo == nil {
		return errors.New("invoice repository not set")
	}
	return s.invoiceRepo.MarkPaid(ctx, id, time.Now())
}

// ListClientInvoices retrieves a client's invoices
func (s *FinancialService) ListClientInvoices(ctx context.Context, clientID uuid.UUID, status *models.InvoiceStatus) ([]*models.Invoice, error) {
	if s.invoiceRepo == nil {
		return nil, errors.New("invoice repository not set")
	}
	return s.invoiceRepo.ListByClient(ctx, clientID, status)
}

// DeleteInvoice deletes an invoice
func (s *FinancialService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if s.invoiceRepo == nil {
		return errors.New("invoice repository not set")
	}
	return s.invoiceRepo.Delete(ctx, id)
}
