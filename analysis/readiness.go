package analysis

import "fmt"

// Export-readiness statuses. Incomplete statuses name the failing
// condition so the three failure combinations stay distinguishable.
const (
	ReadinessReady            = "PRONTO PARA EXPORTAÇÃO (após revisão final)"
	ReadinessMissingFacts     = "INCOMPLETO (sem descrição dos fatos)"
	ReadinessMissingDocs      = "INCOMPLETO (sem anexos)"
	ReadinessMissingFactsDocs = "INCOMPLETO (faltam fatos e anexos)"
)

// ExportReadiness is the etapa6 result: the final go/no-go checklist for
// submission. Letterhead and link checks are declared future work, not
// computed.
type ExportReadiness struct {
	Title       string `json:"titulo"`
	Attachments string `json:"anexos"`
	Letterhead  string `json:"timbre"`
	Links       string `json:"links"`
	Status      string `json:"status"`
}

// ExportReadinessChecker decides whether a case is ready for export.
type ExportReadinessChecker struct{}

// NewExportReadinessChecker creates an export-readiness checker.
func NewExportReadinessChecker() *ExportReadinessChecker {
	return &ExportReadinessChecker{}
}

// Check reports ready if and only if the narrative is non-empty and at
// least one attachment exists.
func (c *ExportReadinessChecker) Check(snap CaseSnapshot) ExportReadiness {
	hasNarrative := snap.Narrative != ""
	hasDocs := len(snap.Attachments) > 0

	attachments := "Nenhum anexo encontrado."
	if hasDocs {
		attachments = fmt.Sprintf("%d arquivo(s) anexado(s).", len(snap.Attachments))
	}

	var status string
	switch {
	case hasNarrative && hasDocs:
		status = ReadinessReady
	case hasNarrative:
		status = ReadinessMissingDocs
	case hasDocs:
		status = ReadinessMissingFacts
	default:
		status = ReadinessMissingFactsDocs
	}

	return ExportReadiness{
		Title:       "Protocolo (Checklist)",
		Attachments: attachments,
		Letterhead:  "Aplicar timbre na exportação (implementar).",
		Links:       "Verificar URLs dos anexos (implementar).",
		Status:      status,
	}
}
