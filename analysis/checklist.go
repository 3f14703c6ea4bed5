package analysis

import "strings"

// ItemStatus is the state of one required-document checklist entry.
type ItemStatus string

const (
	StatusOK      ItemStatus = "ok"
	StatusWarning ItemStatus = "warning"
	StatusMissing ItemStatus = "missing"
)

// ChecklistItem is one required document matched against the snapshot's
// attachments. Name is unique within a checklist.
type ChecklistItem struct {
	Name   string     `json:"nome"`
	Status ItemStatus `json:"status"`
	Note   string     `json:"obs,omitempty"`
}

// Checklist stage statuses.
const (
	ChecklistComplete   = "Completo"
	ChecklistPartial    = "Parcial"
	ChecklistIncomplete = "Incompleto"
)

// DocumentChecklist is the etapa1 result: the per-area required-document
// list scored against the case attachments.
type DocumentChecklist struct {
	Title     string          `json:"titulo"`
	Status    string          `json:"status"`
	Items     []ChecklistItem `json:"lista"`
	Narrative string          `json:"narrativa"`
}

// ChecklistEngine derives the required-document checklist for an area.
type ChecklistEngine struct {
	tables *Tables
}

// NewChecklistEngine creates a checklist engine over the given tables.
func NewChecklistEngine(t *Tables) *ChecklistEngine {
	return &ChecklistEngine{tables: t}
}

// Build scores each required document for the area against the snapshot's
// attachment names. Missing documents are findings, never errors; identity
// documents missing by name are downgraded to a warning because they are
// commonly attached under another name.
func (e *ChecklistEngine) Build(snap CaseSnapshot, area Area) DocumentChecklist {
	required := e.tables.RequiredDocs[area]
	if required == nil {
		required = e.tables.DefaultDocs
	}

	items := make([]ChecklistItem, 0, len(required))
	for _, name := range required {
		if e.attachmentMatches(snap.Attachments, name) {
			items = append(items, ChecklistItem{Name: name, Status: StatusOK})
			continue
		}
		if containsAny(strings.ToLower(name), e.tables.IdentityTerms) {
			items = append(items, ChecklistItem{
				Name:   name,
				Status: StatusWarning,
				Note:   "Pode estar anexado com nome diferente. Verificar anexos.",
			})
			continue
		}
		items = append(items, ChecklistItem{
			Name:   name,
			Status: StatusMissing,
			Note:   "Documento não localizado nos anexos do processo.",
		})
	}

	e.flagCaptureLegibility(snap.Attachments, items)

	return DocumentChecklist{
		Title:     "Coleta de Documentos",
		Status:    overallChecklistStatus(items),
		Items:     items,
		Narrative: narrativeNote(snap),
	}
}

// attachmentMatches reports whether any attachment name contains the
// required label or vice versa, case-insensitively.
func (e *ChecklistEngine) attachmentMatches(attachments []Attachment, label string) bool {
	lowerLabel := strings.ToLower(label)
	for _, a := range attachments {
		lowerName := strings.ToLower(a.Name)
		if strings.Contains(lowerName, lowerLabel) || strings.Contains(lowerLabel, lowerName) {
			return true
		}
	}
	return false
}

// flagCaptureLegibility downgrades conversation/print items already marked
// ok when an attachment name suggests a photo or chat capture: those need
// a manual legibility and context check.
func (e *ChecklistEngine) flagCaptureLegibility(attachments []Attachment, items []ChecklistItem) {
	capture := false
	for _, a := range attachments {
		if containsAny(strings.ToLower(a.Name), e.tables.PhotoTerms) {
			capture = true
			break
		}
	}
	if !capture {
		return
	}
	for i := range items {
		if items[i].Status != StatusOK {
			continue
		}
		if containsAny(strings.ToLower(items[i].Name), e.tables.ConversationLabels) {
			items[i].Status = StatusWarning
			items[i].Note = "Verificar legibilidade e contexto completo (data/autor)."
		}
	}
}

func overallChecklistStatus(items []ChecklistItem) string {
	warnings := 0
	for _, item := range items {
		switch item.Status {
		case StatusMissing:
			return ChecklistIncomplete
		case StatusWarning:
			warnings++
		}
	}
	if warnings > 0 {
		return ChecklistPartial
	}
	return ChecklistComplete
}

func narrativeNote(snap CaseSnapshot) string {
	if snap.Narrative != "" {
		return "Narrativa presente. Conferir datas, nomes e sequência cronológica antes de avançar para a peça."
	}
	return "Descrição do processo está vazia. Preencha os fatos (o que ocorreu, quando e consequências) para melhorar as próximas etapas."
}
