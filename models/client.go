package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a client of the firm
type Client struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"` // portal login, when granted
	Name      string     `json:"nome"`
	Email     string     `json:"email"`
	Phone     string     `json:"telefone"`
	Document  string     `json:"cpf"`
	Address   string     `json:"endereco"`
	Notes     string     `json:"observacoes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
