package repository

import (
	"context"

	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, recipient_id, case_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		msg.SenderID,
		msg.RecipientID,
		msg.CaseID,
		msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)

	return err
}

// ListConversation retrieves all messages between two users, oldest first
func (r *MessageRepository) ListConversation(ctx context.Context, a, b uuid.UUID) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, case_id, body, read, created_at
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.RecipientID,
			&msg.CaseID,
			&msg.Body,
			&msg.Read,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	return msgs, rows.Err()
}

// MarkRead marks every message sent to recipient from sender as read
func (r *MessageRepository) MarkRead(ctx context.Context, recipientID, senderID uuid.UUID) error {
	query := `
		UPDATE messages SET read = TRUE
		WHERE recipient_id = $1 AND sender_id = $2 AND read = FALSE`

	_, err := r.db.Exec(ctx, query, recipientID, senderID)
	return err
}

// CountUnread counts unread messages for a user
func (r *MessageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND read = FALSE`
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}
