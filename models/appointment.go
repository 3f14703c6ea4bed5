package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the scheduling state of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Agendado"
	AppointmentDone      AppointmentStatus = "Realizado"
	AppointmentCanceled  AppointmentStatus = "Cancelado"
)

// Appointment represents a calendar entry for a lawyer, optionally bound
// to a client and a case
type Appointment struct {
	ID       uuid.UUID         `json:"id"`
	LawyerID uuid.UUID         `json:"lawyer_id"`
	ClientID *uuid.UUID        `json:"client_id,omitempty"`
	CaseID   *uuid.UUID        `json:"case_id,omitempty"`
	Status   AppointmentStatus `json:"status"`

	Title    string    `json:"titulo"`
	Notes    string    `json:"observacoes,omitempty"`
	StartsAt time.Time `json:"inicio"`
	EndsAt   time.Time `json:"fim"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
