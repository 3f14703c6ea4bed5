package analysis

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field bounds applied during normalization. Anything longer is cut, not
// rejected: the pipeline surfaces gaps instead of failing on them.
const (
	maxTitleLen     = 500
	maxNarrativeLen = 20000
	maxShortLen     = 500
	maxRulingLen    = 60000
	maxAttachName   = 240
	maxAttachType   = 120
	maxAttachURL    = 1500
)

// Attachment is one file reference on a case. Name is required for
// checklist matching; Type and URL may be empty.
type Attachment struct {
	Name string `json:"nome"`
	Type string `json:"tipo"`
	URL  string `json:"url"`
}

// CaseSnapshot is a bounded, sanitized copy of a case record. It is built
// fresh per invocation and never mutated by the pipeline.
type CaseSnapshot struct {
	ID              string       `json:"id"`
	Title           string       `json:"titulo"`
	Narrative       string       `json:"descricao"`
	Area            string       `json:"area"`
	Status          string       `json:"status"`
	Urgency         string       `json:"urgencia"`
	CaseNumber      string       `json:"numeroProcesso"`
	SettlementValue string       `json:"valorAcordado"`
	RulingOutcome   string       `json:"resultadoSentenca"`
	RulingText      string       `json:"sentenca,omitempty"`
	Attachments     []Attachment `json:"anexos"`

	// System dates, used only by report composers. Nil when unknown.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	ClosedAt  *time.Time `json:"dataEncerramento,omitempty"`
}

// boundText trims and truncates a string to max bytes without splitting a
// multi-byte rune at the cut point.
func boundText(s string, max int) string {
	t := strings.TrimSpace(s)
	if len(t) <= max {
		return t
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(t[cut]) {
		cut--
	}
	return t[:cut]
}

// Normalize returns a copy of snap with every text field trimmed and
// truncated to its bound, and the attachment list cleaned: entries without
// a usable name are dropped, a nil list becomes an empty one.
func Normalize(snap CaseSnapshot) CaseSnapshot {
	out := snap
	out.Title = boundText(snap.Title, maxTitleLen)
	out.Narrative = boundText(snap.Narrative, maxNarrativeLen)
	out.Area = boundText(snap.Area, maxShortLen)
	out.Status = boundText(snap.Status, maxShortLen)
	out.Urgency = boundText(snap.Urgency, maxShortLen)
	out.CaseNumber = boundText(snap.CaseNumber, maxShortLen)
	out.SettlementValue = boundText(snap.SettlementValue, maxShortLen)
	out.RulingOutcome = boundText(snap.RulingOutcome, maxShortLen)
	out.RulingText = boundText(snap.RulingText, maxRulingLen)

	out.Attachments = make([]Attachment, 0, len(snap.Attachments))
	for _, a := range snap.Attachments {
		name := boundText(a.Name, maxAttachName)
		if name == "" {
			continue
		}
		out.Attachments = append(out.Attachments, Attachment{
			Name: name,
			Type: boundText(a.Type, maxAttachType),
			URL:  boundText(a.URL, maxAttachURL),
		})
	}
	return out
}
