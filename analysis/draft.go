package analysis

import (
	"strings"
	"text/template"
)

// Placeholder markers embedded in the draft wherever information is still
// missing. The quality reviewer scans for exactly this set, so any new
// placeholder must be registered here.
const (
	markerFacts    = "[Descreva aqui os fatos com datas, locais, eventos e consequências.]"
	markerClaims   = "[Pedidos conforme estratégia"
	markerEvidence = "[Relacionar documentos"
)

// draftMarker couples a placeholder prefix with the finding reported when
// the marker survives into the reviewed draft.
type draftMarker struct {
	Prefix  string
	Finding string
}

var draftMarkers = []draftMarker{
	{Prefix: "[Descreva aqui os fatos", Finding: "Fatos incompletos."},
	{Prefix: markerClaims, Finding: "Pedidos não detalhados."},
	{Prefix: markerEvidence, Finding: "Provas/anexos não listados."},
}

// Draft is the etapa4 result: the templated petition draft.
type Draft struct {
	Title string `json:"titulo"`
	Text  string `json:"minuta"`
	Tone  string `json:"tom"`
}

// petitionData is the typed record the petition template renders from.
type petitionData struct {
	Facts      string
	LegalBases string
	Strategy   string
	ClaimValue string
}

var petitionTemplate = template.Must(template.New("peticao").Parse(
	`EXCELENTÍSSIMO(A) SENHOR(A) DOUTOR(A) JUIZ(A)

I - DOS FATOS
{{.Facts}}

II - DO DIREITO
[Fundamentos sugeridos: {{.LegalBases}}]

III - DOS PEDIDOS
[Pedidos conforme estratégia: {{.Strategy}}]

IV - DAS PROVAS
` + markerEvidence + ` anexados e requerer provas necessárias.]

V - DO VALOR DA CAUSA
{{.ClaimValue}}

Termos em que,
pede deferimento.`))

// DraftComposer merges the narrative, strategy and roadmap into the
// petition draft.
type DraftComposer struct{}

// NewDraftComposer creates a draft composer.
func NewDraftComposer() *DraftComposer {
	return &DraftComposer{}
}

// Compose renders the draft. Missing information becomes an explicit
// bracketed placeholder so later stages can detect it mechanically.
func (c *DraftComposer) Compose(snap CaseSnapshot, strategy Strategy, roadmap Roadmap) Draft {
	facts := boundText(snap.Narrative, 4000)
	if facts == "" {
		facts = markerFacts
	}

	data := petitionData{
		Facts:      facts,
		LegalBases: strings.Join(roadmap.LegalBases, "; "),
		Strategy:   boundText(strategy.Narrative, 800),
		ClaimValue: roadmap.ClaimValue,
	}

	var sb strings.Builder
	// static template over plain strings; Execute cannot fail here
	_ = petitionTemplate.Execute(&sb, data)

	return Draft{
		Title: "Redação da Petição",
		Text:  sb.String(),
		Tone:  "Objetivo e técnico",
	}
}
