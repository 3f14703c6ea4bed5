package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one internal message between a firm user and a
// client portal user
type Message struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	CaseID      *uuid.UUID `json:"case_id,omitempty"`
	Body        string     `json:"conteudo"`
	Read        bool       `json:"lida"`
	CreatedAt   time.Time  `json:"created_at"`
}
