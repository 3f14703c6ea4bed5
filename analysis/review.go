package analysis

import "strings"

// Coherence is the reviewer's rating of a composed draft.
type Coherence string

const (
	CoherenceHigh   Coherence = "Alta"
	CoherenceMedium Coherence = "Média"
	CoherenceLow    Coherence = "Baixa"
)

// Review is the etapa5 result: residual-placeholder findings over the
// composed draft.
type Review struct {
	Title       string    `json:"titulo"`
	Spelling    string    `json:"ortografia"`
	Coherence   Coherence `json:"coerencia"`
	Claims      string    `json:"pedidos"`
	TeamSummary string    `json:"resumoEquipe"`
}

// QualityReviewer scans a draft for the known placeholder markers.
type QualityReviewer struct{}

// NewQualityReviewer creates a quality reviewer.
func NewQualityReviewer() *QualityReviewer {
	return &QualityReviewer{}
}

// Review rates the draft. Coherence degrades with the number of residual
// markers: none is Alta, one or two Média, more Baixa.
func (r *QualityReviewer) Review(draft Draft) Review {
	text := boundText(draft.Text, maxNarrativeLen)

	var findings []string
	claimsPending := false
	for _, m := range draftMarkers {
		if strings.Contains(text, m.Prefix) {
			findings = append(findings, m.Finding)
			if m.Prefix == markerClaims {
				claimsPending = true
			}
		}
	}

	coherence := CoherenceHigh
	switch {
	case len(findings) > 2:
		coherence = CoherenceLow
	case len(findings) > 0:
		coherence = CoherenceMedium
	}

	claims := "Pedidos presentes (revisar)."
	if claimsPending {
		claims = "Pedidos incompletos (preencher)."
	}

	summary := "Petição com estrutura completa. Revisar detalhes e adequar ao caso."
	if len(findings) > 0 {
		summary = "Ajustes necessários: " + strings.Join(findings, " ")
	}

	return Review{
		Title:       "Revisão e Padronização",
		Spelling:    "Verificação automática pendente (implementar).",
		Coherence:   coherence,
		Claims:      claims,
		TeamSummary: summary,
	}
}
