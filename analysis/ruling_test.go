package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulingAnalyzerMissingText(t *testing.T) {
	a := NewRulingAnalyzer(DefaultTables())

	got, err := a.Analyze(CaseSnapshot{Narrative: "caso com fatos mas sem sentença"})

	require.ErrorIs(t, err, ErrRulingTextMissing)
	assert.Nil(t, got)
}

func TestRulingAnalyzerUnfavorableRuling(t *testing.T) {
	// bare case, heavily negative ruling: low score, negative recommendation
	a := NewRulingAnalyzer(DefaultTables())
	snap := CaseSnapshot{
		RulingText: "Julgo improcedente o pedido. O autor não comprovou os fatos alegados, " +
			"havendo ausência de prova e não tendo se desincumbido do ônus da prova. " +
			"Reconheço ainda a prescrição da pretensão.",
	}

	got, err := a.Analyze(snap)
	require.NoError(t, err)

	// base 50, no docs, no narrative, negatives capped at -20; "improcedente"
	// still substring-matches the positive term "proced" for +3
	assert.Equal(t, 33, got.Score)
	assert.Contains(t, got.Recommendation, "Baixa viabilidade")

	assert.GreaterOrEqual(t, len(got.Summary.Signals.Negative), 4)
	assert.Contains(t, got.Summary.Signals.Negative, "ônus da prova")

	require.NotEmpty(t, got.Cons)
	joined := strings.Join(got.Cons, " ")
	assert.Contains(t, joined, "Não há anexos")
	assert.Contains(t, joined, "Descrição do caso está curta/genérica")
	assert.Contains(t, joined, "fundamentos desfavoráveis")
}

func TestRulingAnalyzerFavorableRuling(t *testing.T) {
	a := NewRulingAnalyzer(DefaultTables())
	snap := CaseSnapshot{
		Narrative:   "Cliente cobrado indevidamente, pedidos de restituição e dano moral.",
		Attachments: []Attachment{{Name: "contrato.pdf"}, {Name: "faturas.pdf"}},
		RulingText: "Julgo procedente em parte. Defiro a restituição e acolho parcialmente " +
			"o pedido de danos morais. Reconheço a cobrança indevida e condeno a ré.",
	}

	got, err := a.Analyze(snap)
	require.NoError(t, err)

	// base 50 +10 docs +10 narrative, positives capped at +10, no negatives
	assert.Equal(t, 80, got.Score)
	assert.Contains(t, got.Recommendation, "indicativos de viabilidade")
	assert.NotEmpty(t, got.Summary.Signals.Positive)
	assert.Empty(t, got.Summary.Signals.Negative)
	assert.Contains(t, strings.Join(got.Pros, " "), "trechos favoráveis")
}

func TestRulingAnalyzerScoreClamp(t *testing.T) {
	a := NewRulingAnalyzer(DefaultTables())

	t.Run("never below zero", func(t *testing.T) {
		assert.Equal(t, 30, a.score(false, false, 0, 100))
		assert.GreaterOrEqual(t, a.score(false, false, 0, 100), 0)
	})

	t.Run("never above one hundred", func(t *testing.T) {
		got := a.score(true, true, 100, 0)
		assert.LessOrEqual(t, got, 100)
		assert.Equal(t, 80, got)
	})

	t.Run("caps bind before the clamp", func(t *testing.T) {
		// 50 - min(20, 6*10) = 30 regardless of how negative the ruling is
		assert.Equal(t, a.score(false, false, 0, 4), a.score(false, false, 0, 40))
	})
}

func TestRulingAnalyzerMarginFindings(t *testing.T) {
	a := NewRulingAnalyzer(DefaultTables())
	snap := CaseSnapshot{
		RulingText: "Sentença com omissão quanto ao segundo pedido e contradição entre " +
			"fundamentação e dispositivo, além de erro material na data.",
	}

	got, err := a.Analyze(snap)
	require.NoError(t, err)

	joined := strings.Join(got.Pros, " ")
	assert.Contains(t, joined, "omissão")
	assert.Contains(t, joined, "contradição")
	assert.Contains(t, joined, "erro material")
}

func TestRulingAnalyzerExcerpts(t *testing.T) {
	a := NewRulingAnalyzer(DefaultTables())
	snap := CaseSnapshot{
		Narrative:  "Relato do processo.",
		RulingText: strings.Repeat("texto neutro ", 50) + "julgo improcedente o pedido" + strings.Repeat(" mais texto", 50),
	}

	got, err := a.Analyze(snap)
	require.NoError(t, err)

	require.NotEmpty(t, got.Summary.KeyExcerpts)
	assert.Contains(t, got.Summary.KeyExcerpts[0], "improcedente")
	assert.Contains(t, got.Parallel.ObservedInRuling, "improcedente")
	assert.Equal(t, "Relato do processo.", got.Parallel.AllegedInCase)
}

func TestRulingAnalyzerExcerptsSurviveCaseFolding(t *testing.T) {
	// lower-casing "Ⱥ" grows the text by a byte per rune; the excerpt
	// windows must still land inside bounds
	a := NewRulingAnalyzer(DefaultTables())
	snap := CaseSnapshot{RulingText: strings.Repeat("Ⱥ", 200) + " improcedente"}

	got, err := a.Analyze(snap)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, got.Score, 0)
	assert.LessOrEqual(t, got.Score, 100)
	require.NotEmpty(t, got.Summary.KeyExcerpts)
	assert.Contains(t, got.Summary.KeyExcerpts[0], "improcedente")
}

func TestRulingAnalyzerChecklistIsStable(t *testing.T) {
	tables := DefaultTables()
	a := NewRulingAnalyzer(tables)

	got, err := a.Analyze(CaseSnapshot{RulingText: "julgo improcedente"})
	require.NoError(t, err)

	require.Len(t, got.Checklist, 5)
	got.Checklist[0] = "mutated"
	assert.NotEqual(t, "mutated", tables.AppealChecklist[0])
}
