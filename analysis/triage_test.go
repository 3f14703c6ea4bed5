package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriageCompleteLead(t *testing.T) {
	tr := NewTriager(DefaultTables())
	lead := LeadSnapshot{
		Category:       "Trabalhista",
		Urgency:        "Alta",
		Goal:           "Receber verbas rescisórias",
		RelationType:   "Empregado CLT",
		IncidentDate:   "2026-01-10",
		ProblemSummary: "Demitido sem receber as verbas.",
	}

	got := tr.Triage(lead)

	assert.Equal(t, "Demitido sem receber as verbas.", got.Summary)
	assert.Contains(t, got.Triage, "Categoria: Trabalhista | Urgência: Alta | Prioridade sugerida: Alta.")
	assert.Contains(t, got.Triage, "Informações mínimas parecem suficientes")
	assert.NotContains(t, got.Triage, "Pontos a confirmar")
	assert.Equal(t, []string{"CTPS", "Holerites", "Extrato FGTS", "Comprovantes de ponto", "Conversas/Emails"}, got.Documents)
	assert.Contains(t, got.Opinion, "Urgência indicada: Alta.")
	assert.Contains(t, got.Opinion, "Demitido sem receber as verbas.")
}

func TestTriageIncompleteLead(t *testing.T) {
	tr := NewTriager(DefaultTables())
	lead := LeadSnapshot{
		Message:        "Comprei um produto com defeito.",
		Category:       "Consumidor",
		OngoingProblem: true,
	}

	got := tr.Triage(lead)

	assert.Contains(t, got.Triage, "Urgência: Média | Prioridade sugerida: Média.")
	assert.Contains(t, got.Triage, "Pontos a confirmar:")
	assert.Contains(t, got.Triage, "- Objetivo do cliente não informado.")
	assert.Contains(t, got.Triage, "- Tipo de relação não informado.")
	assert.Contains(t, got.Triage, "- Data do fato não informada (atenção a prazos).")
	assert.Contains(t, got.Triage, "- Indicação de problema contínuo.")
	assert.NotContains(t, got.Triage, "Categoria não informada.")
	assert.Equal(t, "Comprei um produto com defeito.", got.Summary)
}

func TestTriageSummaryFallbackChain(t *testing.T) {
	tr := NewTriager(DefaultTables())

	t.Run("extra info when summary and message are empty", func(t *testing.T) {
		got := tr.Triage(LeadSnapshot{ExtraInfo: "Só tenho os prints."})
		assert.Equal(t, "Só tenho os prints.", got.Summary)
	})

	t.Run("default when everything is empty", func(t *testing.T) {
		got := tr.Triage(LeadSnapshot{})
		assert.Equal(t, "Sem descrição informada.", got.Summary)
	})
}

func TestTriageDocumentSuggestions(t *testing.T) {
	tr := NewTriager(DefaultTables())

	cases := []struct {
		category string
		wantDoc  string
	}{
		{"Direito trabalhista", "CTPS"},
		{"família", "Certidões (nascimento/casamento)"},
		{"consumidor", "Nota fiscal"},
		{"civil/contratos", "Notificações"},
		{"previdenciário", "Documentos pessoais"},
		{"", "Documentos pessoais"},
	}
	for _, tc := range cases {
		t.Run("category "+tc.category, func(t *testing.T) {
			got := tr.Triage(LeadSnapshot{Category: tc.category})
			assert.Contains(t, got.Documents, tc.wantDoc)
		})
	}
}

func TestTriagePriorityFromUrgency(t *testing.T) {
	tr := NewTriager(DefaultTables())

	cases := []struct {
		urgency string
		want    string
	}{
		{"Alta", "Alta"},
		{"muito alta", "Alta"},
		{"Baixa", "Baixa"},
		{"Média", "Média"},
		{"indefinida", "Média"},
		{"", "Média"},
	}
	for _, tc := range cases {
		got := tr.Triage(LeadSnapshot{Urgency: tc.urgency})
		assert.Contains(t, got.Triage, "Prioridade sugerida: "+tc.want+".")
	}
}
