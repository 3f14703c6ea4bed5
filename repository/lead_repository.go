package repository

import (
	"context"
	"fmt"

	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeadRepository handles database operations for intake leads
type LeadRepository struct {
	db *pgxpool.Pool
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (
			status, name, email, phone, category, urgency, goal, relation_type,
			incident_date, ongoing_problem, problem_summary, message, extra_info,
			documents, triage
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		lead.Status,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Category,
		lead.Urgency,
		lead.Goal,
		lead.RelationType,
		lead.IncidentDate,
		lead.OngoingProblem,
		lead.ProblemSummary,
		lead.Message,
		lead.ExtraInfo,
		lead.Documents,
		lead.Triage,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)

	return err
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	lead := &models.Lead{}
	query := `
		SELECT id, status, name, email, phone, category, urgency, goal,
			relation_type, incident_date, ongoing_problem, problem_summary,
			message, extra_info, documents, triage, created_at, updated_at
		FROM leads
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.Status,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Category,
		&lead.Urgency,
		&lead.Goal,
		&lead.RelationType,
		&lead.IncidentDate,
		&lead.OngoingProblem,
		&lead.ProblemSummary,
		&lead.Message,
		&lead.ExtraInfo,
		&lead.Documents,
		&lead.Triage,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return lead, nil
}

// Update updates a lead
func (r *LeadRepository) Update(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads SET
			status = $2,
			name = $3,
			email = $4,
			phone = $5,
			category = $6,
			urgency = $7,
			goal = $8,
			relation_type = $9,
			incident_date = $10,
			ongoing_problem = $11,
			problem_summary = $12,
			message = $13,
			extra_info = $14,
			documents = $15,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		lead.ID,
		lead.Status,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Category,
		lead.Urgency,
		lead.Goal,
		lead.RelationType,
		lead.IncidentDate,
		lead.OngoingProblem,
		lead.ProblemSummary,
		lead.Message,
		lead.ExtraInfo,
		lead.Documents,
	).Scan(&lead.UpdatedAt)

	return err
}

// UpdateTriage updates only the persisted triage document and marks the
// lead as triaged
func (r *LeadRepository) UpdateTriage(ctx context.Context, id uuid.UUID, triage models.AnalysisDocument) error {
	query := `
		UPDATE leads SET
			triage = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, triage, models.LeadStatusTriaged)
	return err
}

// List retrieves leads, optionally filtered by status
func (r *LeadRepository) List(ctx context.Context, status *models.LeadStatus, limit, offset int) ([]*models.Lead, error) {
	query := `
		SELECT id, status, name, email, phone, category, urgency, goal,
			relation_type, incident_date, ongoing_problem, problem_summary,
			message, extra_info, documents, triage, created_at, updated_at
		FROM leads
		WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
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

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		err := rows.Scan(
			&lead.ID,
			&lead.Status,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Category,
			&lead.Urgency,
			&lead.Goal,
			&lead.RelationType,
			&lead.IncidentDate,
			&lead.OngoingProblem,
			&lead.ProblemSummary,
			&lead.Message,
			&lead.ExtraInfo,
			&lead.Documents,
			&lead.Triage,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// Delete deletes a lead
func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM leads WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
