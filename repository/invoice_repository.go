package repository

import (
	"context"
	"fmt"
	"time"

	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	query := `
		INSERT INTO invoices (
			client_id, case_id, status, description, amount_cents, due_date
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		inv.ClientID,
		inv.CaseID,
		inv.Status,
		inv.Description,
		inv.AmountCents,
		inv.DueDate,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)

	return err
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv := &models.Invoice{}
	query := `
		SELECT id, client_id, case_id, status, description, amount_cents,
			due_date, paid_at, created_at, updated_at
		FROM invoices
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.ClientID,
		&inv.CaseID,
		&inv.Status,
		&inv.Description,
		&inv.AmountCents,
		&inv.DueDate,
		&inv.PaidAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return inv, nil
}

// MarkPaid marks an invoice as paid at the given time
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	query := `
		UPDATE invoices SET
			status = $2,
			paid_at = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.InvoicePaid, paidAt)
	return err
}

// ListByClient retrieves a client's invoices, optionally filtered by status
func (r *InvoiceRepository) ListByClient(ctx context.Context, clientID uuid.UUID, status *models.InvoiceStatus) ([]*models.Invoice, error) {
	query := `
		SELECT id, client_id, case_id, status, description, amount_cents,
			due_date, paid_at, created_at, updated_at
		FROM invoices
		WHERE client_id = $1`

	args := []interface{}{clientID}
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, *status)
	}
	query += " ORDER BY due_date ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{}
		err := rows.Scan(
			&inv.ID,
			&inv.ClientID,
			&inv.CaseID,
			&inv.Status,
			&inv.Description,
			&inv.AmountCents,
			&inv.DueDate,
			&inv.PaidAt,
			&inv.CreatedAt,
			&inv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// Delete deletes an invoice
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
