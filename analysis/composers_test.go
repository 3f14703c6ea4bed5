package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rulingFixture(t *testing.T) (CaseSnapshot, *RulingAnalysis) {
	t.Helper()
	snap := CaseSnapshot{
		Title:         "Ação de cobrança indevida",
		Area:          "Consumidor",
		CaseNumber:    "0001234-56.2026.8.26.0100",
		Narrative:     "Cliente foi cobrado por serviço não contratado.",
		RulingOutcome: "Improcedente",
		RulingText:    "Julgo improcedente o pedido por ausência de prova.",
		Attachments:   []Attachment{{Name: "fatura.pdf"}},
	}
	analysis, err := NewRulingAnalyzer(DefaultTables()).Analyze(snap)
	require.NoError(t, err)
	return snap, analysis
}

func TestComposeClientMessage(t *testing.T) {
	snap, analysis := rulingFixture(t)

	got := ComposeClientMessage(snap, analysis)

	assert.Equal(t, "Explicação para o Cliente (WhatsApp/Email)", got.Title)
	assert.Equal(t, "Copiar Texto", got.Action)
	assert.Contains(t, got.Content, `"Ação de cobrança indevida" (Consumidor)`)
	assert.Contains(t, got.Content, "Resultado: Improcedente.")
	// at most three next steps, taken from the appeal checklist
	assert.Contains(t, got.Content, "Identificar qual fundamento foi determinante")
	assert.NotContains(t, got.Content, "Levantar precedentes do tribunal competente")
}

func TestComposeStrategyGuide(t *testing.T) {
	_, analysis := rulingFixture(t)

	got := ComposeStrategyGuide(analysis)

	assert.Equal(t, "Gerar PDF", got.Action)
	assert.Contains(t, got.Content, "Score de viabilidade:")
	assert.Contains(t, got.Content, analysis.Recommendation)
	assert.Contains(t, got.Content, "fundamentos desfavoráveis")
}

func TestComposeAppealDraft(t *testing.T) {
	snap, analysis := rulingFixture(t)

	got := ComposeAppealDraft(snap, analysis, []string{"cobranca", "indevida"})

	assert.Equal(t, "Minuta de Recurso (Modelo Base)", got.Title)
	assert.Contains(t, got.Content, "Processo: Ação de cobrança indevida")
	assert.Contains(t, got.Content, "Número: 0001234-56.2026.8.26.0100")
	assert.Contains(t, got.Content, "I — SÍNTESE DO CASO")
	assert.Contains(t, got.Content, "Palavras-chave para busca: cobranca, indevida")
	// excerpts from the ruling flow into section II
	assert.Contains(t, got.Content, "improcedente")
}

func TestBuildSearchQuery(t *testing.T) {
	e := NewKeywordExtractor(DefaultTables())
	snap := CaseSnapshot{
		Area:       "Trabalhista",
		CaseNumber: "123",
		Narrative:  "horas extras horas extras adicional noturno",
		RulingText: "indefiro as horas extras",
	}

	artifact, query := BuildSearchQuery(snap, e)

	assert.Equal(t, "horas", query.Keywords[0])
	assert.Equal(t, "Trabalhista", query.Filters.Area)
	assert.Equal(t, "123", query.Filters.CaseNumber)
	assert.NotEmpty(t, query.Query)
	assert.Contains(t, artifact.Content, "- horas")
	assert.Equal(t, "Copiar Query", artifact.Action)

	t.Run("empty case yields empty keyword list", func(t *testing.T) {
		_, query := BuildSearchQuery(CaseSnapshot{}, e)
		assert.Empty(t, query.Keywords)
		assert.Empty(t, query.Query)
	})
}
