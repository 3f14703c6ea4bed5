package analysis

import (
	"fmt"
	"strings"
)

const (
	maxLeadSummaryLen  = 1200
	maxLeadCategoryLen = 120
	maxLeadUrgencyLen  = 40
	maxLeadGoalLen     = 300
	maxLeadDateLen     = 60
)

// LeadSnapshot is the intake form of a prospective client, already loaded
// from storage.
type LeadSnapshot struct {
	ID             string   `json:"id"`
	Category       string   `json:"categoria"`
	Urgency        string   `json:"urgencia"`
	Goal           string   `json:"objetivo"`
	RelationType   string   `json:"tipoRelacao"`
	IncidentDate   string   `json:"dataProblema"`
	OngoingProblem bool     `json:"problemaContinuo"`
	ProblemSummary string   `json:"resumoProblema"`
	Message        string   `json:"mensagem"`
	ExtraInfo      string   `json:"informacaoExtra"`
	Documents      []string `json:"documentos"`
}

// TriageResult is the structured intake assessment of a lead.
type TriageResult struct {
	Summary   string   `json:"resumo"`
	Triage    string   `json:"triagem"`
	Documents []string `json:"documentos"`
	Opinion   string   `json:"parecer"`
}

// Triager produces the rule-based intake assessment of a lead.
type Triager struct {
	tables *Tables
}

// NewTriager creates a triager over the given tables.
func NewTriager(t *Tables) *Triager {
	return &Triager{tables: t}
}

// Triage derives summary, priority assessment, suggested documents and the
// initial opinion from the lead form. Missing fields become follow-up
// points, never errors.
func (t *Triager) Triage(lead LeadSnapshot) TriageResult {
	summary := t.summary(lead)
	return TriageResult{
		Summary:   summary,
		Triage:    t.assessment(lead),
		Documents: t.suggestDocs(lead),
		Opinion:   t.opinion(lead, summary),
	}
}

// summary prefers the problem summary, then the free message, then the
// extra-info field.
func (t *Triager) summary(lead LeadSnapshot) string {
	for _, s := range []string{lead.ProblemSummary, lead.Message, lead.ExtraInfo} {
		if v := boundText(s, maxLeadSummaryLen); v != "" {
			return v
		}
	}
	return "Sem descrição informada."
}

func (t *Triager) assessment(lead LeadSnapshot) string {
	category := boundText(lead.Category, maxLeadCategoryLen)
	urgency := boundText(lead.Urgency, maxLeadUrgencyLen)
	if urgency == "" {
		urgency = "Média"
	}

	var points []string
	if category == "" {
		points = append(points, "Categoria não informada.")
	}
	if boundText(lead.Goal, maxLeadGoalLen) == "" {
		points = append(points, "Objetivo do cliente não informado.")
	}
	if boundText(lead.RelationType, maxLeadCategoryLen) == "" {
		points = append(points, "Tipo de relação não informado.")
	}
	if boundText(lead.IncidentDate, maxLeadDateLen) == "" {
		points = append(points, "Data do fato não informada (atenção a prazos).")
	}
	if lead.OngoingProblem {
		points = append(points, "Indicação de problema contínuo.")
	}

	priority := "Média"
	switch lowerUrgency := strings.ToLower(urgency); {
	case strings.Contains(lowerUrgency, "alta"):
		priority = "Alta"
	case strings.Contains(lowerUrgency, "baixa"):
		priority = "Baixa"
	}

	header := fmt.Sprintf("Categoria: %s | Urgência: %s | Prioridade sugerida: %s.",
		orDash(category, "Não informado"), urgency, priority)

	if len(points) == 0 {
		return header + "\nInformações mínimas parecem suficientes para avançar para coleta documental e definição de estratégia."
	}
	return header + "\nPontos a confirmar:\n- " + strings.Join(points, "\n- ")
}

// suggestDocs picks the document list of the first triage rule whose
// category terms match, falling back to the generic list.
func (t *Triager) suggestDocs(lead LeadSnapshot) []string {
	category := strings.ToLower(boundText(lead.Category, maxLeadCategoryLen))
	for _, rule := range t.tables.TriageRules {
		if containsAny(category, rule.CategoryTerms) {
			return append([]string(nil), rule.Documents...)
		}
	}
	return append([]string(nil), t.tables.TriageDocs...)
}

func (t *Triager) opinion(lead LeadSnapshot, summary string) string {
	urgency := boundText(lead.Urgency, maxLeadUrgencyLen)
	if urgency == "" {
		urgency = "Média"
	}
	return fmt.Sprintf(`Parecer inicial (regras):
Com base no relato, recomenda-se confirmar datas e objetivo, coletar os documentos essenciais e avaliar riscos/prazos. Urgência indicada: %s.

Resumo considerado:
%s`, urgency, summary)
}
