package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LeadStatus represents the intake pipeline position of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "Novo"
	LeadStatusTriaged   LeadStatus = "Triado"
	LeadStatusConverted LeadStatus = "Convertido"
	LeadStatusDiscarded LeadStatus = "Descartado"
)

// LeadDocuments is the JSONB list of document names sent by a lead
type LeadDocuments []string

// Value implements driver.Valuer for JSONB
func (d LeadDocuments) Value() (driver.Value, error) {
	if d == nil {
		d = LeadDocuments{}
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *LeadDocuments) Scan(value interface{}) error {
	if value == nil {
		*d = LeadDocuments{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*d = LeadDocuments{}
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Lead represents a pre-intake prospect record
type Lead struct {
	ID     uuid.UUID  `json:"id"`
	Status LeadStatus `json:"status"`

	Name           string `json:"nome"`
	Email          string `json:"email"`
	Phone          string `json:"telefone"`
	Category       string `json:"categoria"`
	Urgency        string `json:"urgencia"`
	Goal           string `json:"objetivo"`
	RelationType   string `json:"tipoRelacao"`
	IncidentDate   string `json:"dataProblema"`
	OngoingProblem bool   `json:"problemaContinuo"`
	ProblemSummary string `json:"resumoProblema"`
	Message        string `json:"mensagem"`
	ExtraInfo      string `json:"informacaoExtra"`

	Documents LeadDocuments    `json:"documentos"`
	Triage    AnalysisDocument `json:"triagem,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
