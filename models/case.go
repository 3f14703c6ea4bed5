package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle status of a legal case
type CaseStatus string

const (
	CaseStatusOpen      CaseStatus = "Em andamento"
	CaseStatusSuspended CaseStatus = "Suspenso"
	CaseStatusConcluded CaseStatus = "Concluído"
	CaseStatusArchived  CaseStatus = "Arquivado"
)

// CaseAttachment is one file reference stored on a case
type CaseAttachment struct {
	Name string `json:"nome"`
	Type string `json:"tipo"`
	URL  string `json:"url"`
}

// CaseAttachments is the JSONB attachment list of a case
type CaseAttachments []CaseAttachment

// Value implements driver.Valuer for JSONB
func (a CaseAttachments) Value() (driver.Value, error) {
	if a == nil {
		a = CaseAttachments{}
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *CaseAttachments) Scan(value interface{}) error {
	if value == nil {
		*a = CaseAttachments{}
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
		*a = CaseAttachments{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// AnalysisDocument is the persisted result of an analysis run, stored as
// an opaque JSONB document keyed by analysis kind
type AnalysisDocument map[string]interface{}

// Value implements driver.Valuer for JSONB
func (d AnalysisDocument) Value() (driver.Value, error) {
	if d == nil {
		d = AnalysisDocument{}
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *AnalysisDocument) Scan(value interface{}) error {
	if value == nil {
		*d = make(AnalysisDocument)
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
		*d = make(AnalysisDocument)
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Case represents a legal case entity
type Case struct {
	ID         uuid.UUID  `json:"id"`
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	LawyerID   *uuid.UUID `json:"lawyer_id,omitempty"`
	Status     CaseStatus `json:"status"`

	Title           string `json:"titulo"`
	Description     string `json:"descricao"`
	Area            string `json:"area"`
	Urgency         string `json:"urgencia"`
	CaseNumber      string `json:"numeroProcesso"`
	SettlementValue string `json:"valorAcordado"`
	RulingOutcome   string `json:"resultadoSentenca"`
	RulingText      string `json:"sentenca,omitempty"`

	Attachments CaseAttachments  `json:"anexos"`
	Analysis    AnalysisDocument `json:"analise,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"dataEncerramento,omitempty"`
}
