package repository

import (
	"context"
	"fmt"

	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseRepository handles database operations for cases
type CaseRepository struct {
	db *pgxpool.Pool
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create creates a new case
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (
			client_id, lawyer_id, status, title, description, area, urgency,
			case_number, settlement_value, ruling_outcome, ruling_text,
			attachments, analysis
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		c.ClientID,
		c.LawyerID,
		c.Status,
		c.Title,
		c.Description,
		c.Area,
		c.Urgency,
		c.CaseNumber,
		c.SettlementValue,
		c.RulingOutcome,
		c.RulingText,
		c.Attachments,
		c.Analysis,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	return err
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	c := &models.Case{}
	query := `
		SELECT id, client_id, lawyer_id, status, title, description, area,
			urgency, case_number, settlement_value, ruling_outcome, ruling_text,
			attachments, analysis, created_at, updated_at, closed_at
		FROM cases
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.ClientID,
		&c.LawyerID,
		&c.Status,
		&c.Title,
		&c.Description,
		&c.Area,
		&c.Urgency,
		&c.CaseNumber,
		&c.SettlementValue,
		&c.RulingOutcome,
		&c.RulingText,
		&c.Attachments,
		&c.Analysis,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.ClosedAt,
	)

	if err != nil {
		return nil, err
	}

	return c, nil
}

// Update updates a case
func (r *CaseRepository) Update(ctx context.Context, c *models.Case) error {
	query := `
		UPDATE cases SET
			client_id = $2,
			lawyer_id = $3,
			status = $4,
			title = $5,
			description = $6,
			area = $7,
			urgency = $8,
			case_number = $9,
			settlement_value = $10,
			ruling_outcome = $11,
			ruling_text = $12,
			attachments = $13,
			closed_at = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		c.ID,
		c.ClientID,
		c.LawyerID,
		c.Status,
		c.Title,
		c.Description,
		c.Area,
		c.Urgency,
		c.CaseNumber,
		c.SettlementValue,
		c.RulingOutcome,
		c.RulingText,
		c.Attachments,
		c.ClosedAt,
	).Scan(&c.UpdatedAt)

	return err
}

// UpdateAnalysis updates only the persisted analysis document
func (r *CaseRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis models.AnalysisDocument) error {
	query := `
		UPDATE cases SET
			analysis = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, analysis)
	return err
}

// UpdateAttachments updates only the attachment list
func (r *CaseRepository) UpdateAttachments(ctx context.Context, id uuid.UUID, attachments models.CaseAttachments) error {
	query := `
		UPDATE cases SET
			attachments = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, attachments)
	return err
}

// List retrieves cases, optionally filtered by status, lawyer or client
func (r *CaseRepository) List(ctx context.Context, status *models.CaseStatus, lawyerID, clientID *uuid.UUID, limit, offset int) ([]*models.Case, error) {
	query := `
		SELECT id, client_id, lawyer_id, status, title, description, area,
			urgency, case_number, settlement_value, ruling_outcome, ruling_text,
			attachments, analysis, created_at, updated_at, closed_at
		FROM cases
		WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}
	if lawyerID != nil {
		query += fmt.Sprintf(" AND lawyer_id = $%d", argIndex)
		args = append(args, *lawyerID)
		argIndex++
	}
	if clientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", argIndex)
		args = append(args, *clientID)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		c := &models.Case{}
		err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.LawyerID,
			&c.Status,
			&c.Title,
			&c.Description,
			&c.Area,
			&c.Urgency,
			&c.CaseNumber,
			&c.SettlementValue,
			&c.RulingOutcome,
			&c.RulingText,
			&c.Attachments,
			&c.Analysis,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.ClosedAt,
		)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// Delete deletes a case
func (r *CaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cases WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
