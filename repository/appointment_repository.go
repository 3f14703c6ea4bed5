package repository

import (
	"context"
	"time"

	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create creates a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	query := `
		INSERT INTO appointments (
			lawyer_id, client_id, case_id, status, title, notes, starts_at, ends_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		appt.LawyerID,
		appt.ClientID,
		appt.CaseID,
		appt.Status,
		appt.Title,
		appt.Notes,
		appt.StartsAt,
		appt.EndsAt,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)

	return err
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appt := &models.Appointment{}
	query := `
		SELECT id, lawyer_id, client_id, case_id, status, title, notes,
			starts_at, ends_at, created_at, updated_at
		FROM appointments
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.LawyerID,
		&appt.ClientID,
		&appt.CaseID,
		&appt.Status,
		&appt.Title,
		&appt.Notes,
		&appt.StartsAt,
		&appt.EndsAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return appt, nil
}

// Update updates an appointment
func (r *AppointmentRepository) Update(ctx context.Context, appt *models.Appointment) error {
	query := `
		UPDATE appointments SET
			client_id = $2,
			case_id = $3,
			status = $4,
			title = $5,
			notes = $6,
			starts_at = $7,
			ends_at = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		appt.ID,
		appt.ClientID,
		appt.CaseID,
		appt.Status,
		appt.Title,
		appt.Notes,
		appt.StartsAt,
		appt.EndsAt,
	).Scan(&appt.UpdatedAt)

	return err
}

// ListByLawyer retrieves a lawyer's appointments within a window
func (r *AppointmentRepository) ListByLawyer(ctx context.Context, lawyerID uuid.UUID, from, to time.Time) ([]*models.Appointment, error) {
	query := `
		SELECT id, lawyer_id, client_id, case_id, status, title, notes,
			starts_at, ends_at, created_at, updated_at
		FROM appointments
		WHERE lawyer_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at ASC`

	rows, err := r.db.Query(ctx, query, lawyerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*models.Appointment
	for rows.Next() {
		appt := &models.Appointment{}
		err := rows.Scan(
			&appt.ID,
			&appt.LawyerID,
			&appt.ClientID,
			&appt.CaseID,
			&appt.Status,
			&appt.Title,
			&appt.Notes,
			&appt.StartsAt,
			&appt.EndsAt,
			&appt.CreatedAt,
			&appt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}

	return appts, rows.Err()
}

// Delete deletes an appointment
func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
