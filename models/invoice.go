package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "Pendente"
	InvoicePaid     InvoiceStatus = "Pago"
	InvoiceOverdue  InvoiceStatus = "Atrasado"
	InvoiceCanceled InvoiceStatus = "Cancelado"
)

// Invoice represents a billing entry for a client, optionally bound to a
// case. Amounts are stored in centavos to avoid float drift.
type Invoice struct {
	ID       uuid.UUID     `json:"id"`
	ClientID uuid.UUID     `json:"client_id"`
	CaseID   *uuid.UUID    `json:"case_id,omitempty"`
	Status   InvoiceStatus `json:"status"`

	Description string     `json:"descricao"`
	AmountCents int64      `json:"valorCentavos"`
	DueDate     time.Time  `json:"vencimento"`
	PaidAt      *time.Time `json:"pagoEm,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
