package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laborSnapshot() CaseSnapshot {
	return CaseSnapshot{
		ID:        "case-1",
		Title:     "Reclamação contra empregadora",
		Narrative: "Trabalhou dois anos sem registro em carteira, sem depósito de FGTS, e foi demitido sem verbas rescisórias.",
		Area:      "Trabalhista",
		Attachments: []Attachment{
			{Name: "foto_whatsapp_conversa.jpg", Type: "image/jpeg"},
		},
	}
}

func TestAreaClassifier(t *testing.T) {
	c := NewAreaClassifier(DefaultTables())

	t.Run("declared area wins", func(t *testing.T) {
		area := c.Classify(CaseSnapshot{Area: "Direito Trabalhista"})
		assert.Equal(t, AreaTrabalhista, area)
	})

	t.Run("text terms classify without declared area", func(t *testing.T) {
		area := c.Classify(CaseSnapshot{Narrative: "empresa não depositou o FGTS"})
		assert.Equal(t, AreaTrabalhista, area)

		area = c.Classify(CaseSnapshot{Narrative: "pedido de guarda compartilhada dos filhos"})
		assert.Equal(t, AreaFamilia, area)
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		// both labor and consumer terms present; labor rule is checked first
		area := c.Classify(CaseSnapshot{Narrative: "demiss após reclamar de cobrança indevida de produto"})
		assert.Equal(t, AreaTrabalhista, area)
	})

	t.Run("unmatched declared area is kept verbatim", func(t *testing.T) {
		area := c.Classify(CaseSnapshot{Area: "Tributário"})
		assert.Equal(t, Area("Tributário"), area)
	})

	t.Run("nothing to go on", func(t *testing.T) {
		area := c.Classify(CaseSnapshot{})
		assert.Equal(t, AreaAConfirmar, area)
	})
}

func TestChecklistNoAttachments(t *testing.T) {
	// labor case with zero attachments: identity docs warn, the rest is
	// missing, nothing is ok
	e := NewChecklistEngine(DefaultTables())
	snap := laborSnapshot()
	snap.Attachments = nil

	got := e.Build(Normalize(snap), AreaTrabalhista)

	require.Len(t, got.Items, 7)
	assert.Equal(t, ChecklistIncomplete, got.Status)

	byName := map[string]ChecklistItem{}
	for _, item := range got.Items {
		byName[item.Name] = item
		assert.NotEqual(t, StatusOK, item.Status)
	}

	assert.Equal(t, StatusWarning, byName["RG e CPF"].Status)
	assert.Equal(t, "Pode estar anexado com nome diferente. Verificar anexos.", byName["RG e CPF"].Note)
	assert.Equal(t, StatusMissing, byName["Holerites"].Status)
	assert.Equal(t, "Documento não localizado nos anexos do processo.", byName["Holerites"].Note)
}

func TestChecklistCaptureLegibility(t *testing.T) {
	// consumer case whose only prints come from a phone photo: the
	// conversation item matches but is downgraded to warning
	e := NewChecklistEngine(DefaultTables())
	snap := CaseSnapshot{
		Area:      "Consumidor",
		Narrative: "Produto veio com defeito e a loja recusa o reembolso.",
		Attachments: []Attachment{
			{Name: "prints/conversas com a loja.png"},
			{Name: "nota fiscal / comprovante de compra.pdf"},
		},
	}

	got := e.Build(Normalize(snap), AreaConsumidor)

	byName := map[string]ChecklistItem{}
	for _, item := range got.Items {
		byName[item.Name] = item
	}

	assert.Equal(t, StatusWarning, byName["Prints/Conversas"].Status)
	assert.Equal(t, "Verificar legibilidade e contexto completo (data/autor).", byName["Prints/Conversas"].Note)
	assert.Equal(t, StatusOK, byName["Nota fiscal / comprovante de compra"].Status)
}

func TestChecklistBidirectionalMatch(t *testing.T) {
	e := NewChecklistEngine(DefaultTables())
	snap := CaseSnapshot{
		Area: "Trabalhista",
		Attachments: []Attachment{
			// attachment name contains the label
			{Name: "extrato fgts 2023-2024.pdf"},
			// label contains the attachment name
			{Name: "holerites"},
		},
	}

	got := e.Build(Normalize(snap), AreaTrabalhista)

	byName := map[string]ChecklistItem{}
	for _, item := range got.Items {
		byName[item.Name] = item
	}
	assert.Equal(t, StatusOK, byName["Extrato FGTS"].Status)
	assert.Equal(t, StatusOK, byName["Holerites"].Status)
}

func TestStrategyAnalyzer(t *testing.T) {
	a := NewStrategyAnalyzer(DefaultTables())

	t.Run("area template", func(t *testing.T) {
		got := a.Analyze(laborSnapshot(), AreaTrabalhista)
		assert.Equal(t, "Reclamação Trabalhista - Rito a definir", got.ActionType)
		assert.Contains(t, got.Rights, "FGTS")
		assert.NotContains(t, got.Narrative, "tutela de urgência")
	})

	t.Run("urgency terms extend the narrative", func(t *testing.T) {
		snap := laborSnapshot()
		snap.Narrative += " Necessária liminar para reintegração."
		got := a.Analyze(snap, AreaTrabalhista)
		assert.Contains(t, got.Narrative, "Há sinais de urgência: avaliar tutela de urgência.")
	})

	t.Run("unknown area falls back to placeholders", func(t *testing.T) {
		got := a.Analyze(CaseSnapshot{}, AreaAConfirmar)
		assert.Equal(t, "A definir", got.ActionType)
		assert.Empty(t, got.Rights)
	})

	t.Run("tables are never aliased", func(t *testing.T) {
		tables := DefaultTables()
		local := NewStrategyAnalyzer(tables)
		got := local.Analyze(laborSnapshot(), AreaTrabalhista)
		got.Rights[0] = "mutated"
		assert.Equal(t, "Verbas rescisórias", tables.Strategies[AreaTrabalhista].Rights[0])
	})
}

func TestRoadmapBuilder(t *testing.T) {
	b := NewRoadmapBuilder(DefaultTables())
	strategy := NewStrategyAnalyzer(DefaultTables()).Analyze(laborSnapshot(), AreaTrabalhista)

	got := b.Build(AreaTrabalhista, strategy)

	assert.Equal(t, []string{
		"Fatos", "Do direito", "Da competência", "Dos pedidos",
		"Das provas", "Do valor da causa", "Requerimentos finais",
	}, got.Structure)
	assert.Contains(t, got.LegalBases, "CLT (dispositivos aplicáveis)")
	assert.Equal(t, strategy.ActionType, got.Guide.ActionType)

	t.Run("unknown area uses generic bases", func(t *testing.T) {
		got := b.Build(AreaAConfirmar, strategy)
		assert.Equal(t, []string{"Legislação aplicável", "Precedentes do tribunal competente"}, got.LegalBases)
	})
}

func TestDraftComposer(t *testing.T) {
	tables := DefaultTables()
	strategy := NewStrategyAnalyzer(tables).Analyze(laborSnapshot(), AreaTrabalhista)
	roadmap := NewRoadmapBuilder(tables).Build(AreaTrabalhista, strategy)
	c := NewDraftComposer()

	t.Run("narrative flows into facts", func(t *testing.T) {
		got := c.Compose(Normalize(laborSnapshot()), strategy, roadmap)
		assert.Contains(t, got.Text, "I - DOS FATOS")
		assert.Contains(t, got.Text, "Trabalhou dois anos sem registro")
		assert.NotContains(t, got.Text, markerFacts)
		assert.Contains(t, got.Text, "pede deferimento.")
	})

	t.Run("empty narrative leaves the facts placeholder", func(t *testing.T) {
		snap := laborSnapshot()
		snap.Narrative = ""
		got := c.Compose(Normalize(snap), strategy, roadmap)
		assert.Contains(t, got.Text, markerFacts)
	})
}

func TestQualityReviewer(t *testing.T) {
	r := NewQualityReviewer()

	t.Run("clean draft is rated high", func(t *testing.T) {
		got := r.Review(Draft{Text: "Petição completa, sem pendências."})
		assert.Equal(t, CoherenceHigh, got.Coherence)
		assert.Equal(t, "Pedidos presentes (revisar).", got.Claims)
		assert.Equal(t, "Petição com estrutura completa. Revisar detalhes e adequar ao caso.", got.TeamSummary)
	})

	t.Run("one marker is rated medium", func(t *testing.T) {
		got := r.Review(Draft{Text: "texto " + markerFacts})
		assert.Equal(t, CoherenceMedium, got.Coherence)
		assert.Contains(t, got.TeamSummary, "Fatos incompletos.")
	})

	t.Run("all markers are rated low with pending claims", func(t *testing.T) {
		got := r.Review(Draft{Text: markerFacts + " " + markerClaims + " " + markerEvidence})
		assert.Equal(t, CoherenceLow, got.Coherence)
		assert.Equal(t, "Pedidos incompletos (preencher).", got.Claims)
	})
}

func TestExportReadiness(t *testing.T) {
	c := NewExportReadinessChecker()
	attachment := []Attachment{{Name: "doc.pdf"}}

	cases := []struct {
		name string
		snap CaseSnapshot
		want string
	}{
		{"facts and docs", CaseSnapshot{Narrative: "fatos", Attachments: attachment}, ReadinessReady},
		{"facts only", CaseSnapshot{Narrative: "fatos"}, ReadinessMissingDocs},
		{"docs only", CaseSnapshot{Attachments: attachment}, ReadinessMissingFacts},
		{"neither", CaseSnapshot{}, ReadinessMissingFactsDocs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.snap)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestPipelineDeterminism(t *testing.T) {
	p := NewPipeline(DefaultTables())
	snap := laborSnapshot()

	first, err := json.Marshal(p.Run(snap))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := json.Marshal(p.Run(snap))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestPipelineStageWiring(t *testing.T) {
	p := NewPipeline(DefaultTables())
	got := p.Run(laborSnapshot())

	assert.Equal(t, "Coleta de Documentos", got.Etapa1.Title)
	assert.Equal(t, "Análise Jurídica", got.Etapa2.Title)
	assert.Equal(t, "Roteiro Jurídico", got.Etapa3.Title)
	assert.Equal(t, "Redação da Petição", got.Etapa4.Title)
	assert.Equal(t, "Revisão e Padronização", got.Etapa5.Title)
	assert.Equal(t, "Protocolo (Checklist)", got.Etapa6.Title)

	// the draft carries the labor strategy through etapa3's guide
	assert.Contains(t, got.Etapa4.Text, "CLT (dispositivos aplicáveis)")
	assert.Equal(t, ReadinessReady, got.Etapa6.Status)
}

func TestNormalizeBounds(t *testing.T) {
	long := strings.Repeat("ã", maxTitleLen) // 2 bytes per rune

	snap := Normalize(CaseSnapshot{
		Title: long,
		Attachments: []Attachment{
			{Name: "   "},
			{Name: "ok.pdf"},
		},
	})

	assert.LessOrEqual(t, len(snap.Title), maxTitleLen)
	assert.True(t, strings.HasSuffix(snap.Title, "ã"), "truncation must not split a rune")
	require.Len(t, snap.Attachments, 1)
	assert.Equal(t, "ok.pdf", snap.Attachments[0].Name)
}
