package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the access level of a user
type Role string

const (
	RoleAdmin  Role = "administrador"
	RoleLawyer Role = "advogado"
	RoleClient Role = "cliente"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	FirmName     *string   `json:"firm_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session represents an issued API token. The token itself is an opaque
// random value; expiry is enforced on lookup.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
