package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"lexflow-backend/analysis"
)

// Conventional artifact file names.
const (
	ReportFileName      = "relatorio_ia_processo.pdf"
	BundleFileName      = "exportacao_processo.zip"
	FinalReportFileName = "relatorio_final.pdf"

	attachmentsEntry = "anexos.txt"
	checklistEntry   = "checklist.txt"
	rawDataEntry     = "dados.json"
)

// Exporter composes the six-stage analysis into the PDF report and the
// ZIP bundle. Rendering is delegated; only the composition and entry
// ordering live here.
type Exporter struct {
	pdf     PDFRenderer
	archive ArchiveBuilder
}

// NewExporter creates an exporter over the given collaborators.
func NewExporter(pdf PDFRenderer, archive ArchiveBuilder) *Exporter {
	return &Exporter{pdf: pdf, archive: archive}
}

// ReportTitle is the heading of the case analysis report.
func ReportTitle(snap analysis.CaseSnapshot) string {
	title := snap.Title
	if title == "" {
		title = "Processo"
	}
	return "Relatório de Análise — " + title
}

// ReportSections lays out snapshot metadata followed by each stage in
// pipeline order.
func ReportSections(snap analysis.CaseSnapshot, result *analysis.CaseAnalysis) []Section {
	return []Section{
		{Heading: "Dados do Processo", Body: snapshotText(snap)},
		{Heading: "Etapa 1 — " + result.Etapa1.Title, Body: checklistText(result.Etapa1)},
		{Heading: "Etapa 2 — " + result.Etapa2.Title, Body: strategyText(result.Etapa2)},
		{Heading: "Etapa 3 — " + result.Etapa3.Title, Body: roadmapText(result.Etapa3)},
		{Heading: "Etapa 4 — " + result.Etapa4.Title, Body: result.Etapa4.Text},
		{Heading: "Etapa 5 — " + result.Etapa5.Title, Body: reviewText(result.Etapa5)},
		{Heading: "Etapa 6 — " + result.Etapa6.Title, Body: readinessText(result.Etapa6)},
	}
}

// ExportPDF renders the full analysis report.
func (e *Exporter) ExportPDF(snap analysis.CaseSnapshot, result *analysis.CaseAnalysis) ([]byte, error) {
	return e.pdf.Render(ReportTitle(snap), ReportSections(snap, result))
}

// ExportBundle renders the PDF and packs it with the attachment list, the
// checklist summary and the raw JSON dump. Entry order is fixed.
func (e *Exporter) ExportBundle(snap analysis.CaseSnapshot, result *analysis.CaseAnalysis) ([]byte, error) {
	pdfBytes, err := e.ExportPDF(snap, result)
	if err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(struct {
		Case     analysis.CaseSnapshot  `json:"processo"`
		Analysis *analysis.CaseAnalysis `json:"analise"`
	}{snap, result}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding raw dump: %w", err)
	}

	return e.archive.Build([]ArchiveEntry{
		{Name: ReportFileName, Data: pdfBytes},
		{Name: attachmentsEntry, Data: []byte(attachmentsText(snap))},
		{Name: checklistEntry, Data: []byte(checklistText(result.Etapa1))},
		{Name: rawDataEntry, Data: raw},
	})
}

// ExportArtifact renders a single text artifact (final report, strategy
// guide) as a one-section PDF.
func (e *Exporter) ExportArtifact(artifact analysis.Artifact) ([]byte, error) {
	return e.pdf.Render(artifact.Title, []Section{{Body: artifact.Content}})
}

func snapshotText(snap analysis.CaseSnapshot) string {
	return fmt.Sprintf(`Título: %s
Área: %s
Status: %s
Nº do processo: %s
Anexos: %d`,
		dash(snap.Title), dash(snap.Area), dash(snap.Status),
		dash(snap.CaseNumber), len(snap.Attachments))
}

func attachmentsText(snap analysis.CaseSnapshot) string {
	if len(snap.Attachments) == 0 {
		return "Nenhum anexo registrado."
	}
	var lines []string
	for _, a := range snap.Attachments {
		line := "- " + a.Name
		if a.URL != "" {
			line += " | " + a.URL
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func checklistText(c analysis.DocumentChecklist) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Status geral: %s\n\n", c.Status)
	for _, item := range c.Items {
		fmt.Fprintf(&sb, "[%s] %s", item.Status, item.Name)
		if item.Note != "" {
			fmt.Fprintf(&sb, " — %s", item.Note)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + c.Narrative)
	return sb.String()
}

func strategyText(s analysis.Strategy) string {
	return fmt.Sprintf(`Tipo de ação: %s
Direitos potenciais: %s
Tese principal: %s
Tese secundária: %s
Estratégia: %s`,
		s.ActionType, dash(strings.Join(s.Rights, "; ")),
		s.PrimaryThesis, s.SecondaryThesis, s.Narrative)
}

func roadmapText(r analysis.Roadmap) string {
	return fmt.Sprintf(`Estrutura: %s
Fundamentos: %s
Jurisprudência: %s
Valor da causa: %s`,
		strings.Join(r.Structure, " > "),
		strings.Join(r.LegalBases, "; "),
		r.Precedents, r.ClaimValue)
}

func reviewText(r analysis.Review) string {
	return fmt.Sprintf(`Ortografia: %s
Coerência: %s
Pedidos: %s
Resumo: %s`,
		r.Spelling, r.Coherence, r.Claims, r.TeamSummary)
}

func readinessText(r analysis.ExportReadiness) string {
	return fmt.Sprintf(`Anexos: %s
Timbre: %s
Links: %s
Status: %s`,
		r.Attachments, r.Letterhead, r.Links, r.Status)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
