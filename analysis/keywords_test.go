package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordExtractor(t *testing.T) {
	e := NewKeywordExtractor(DefaultTables())

	t.Run("frequency ranks, diacritics fold", func(t *testing.T) {
		got := e.Extract("Rescisão rescisao rescisão. Contrato contrato. Multa.")
		require.NotEmpty(t, got)
		assert.Equal(t, "rescisao", got[0])
		assert.Equal(t, "contrato", got[1])
		assert.Equal(t, "multa", got[2])
	})

	t.Run("stopwords and short tokens are dropped", func(t *testing.T) {
		got := e.Extract("o juiz da lei foi ao fórum analisar fgts")
		assert.NotContains(t, got, "juiz")
		assert.NotContains(t, got, "lei")
		assert.NotContains(t, got, "foi")
		assert.Contains(t, got, "forum")
		assert.Contains(t, got, "fgts")
	})

	t.Run("ties keep first-occurrence order", func(t *testing.T) {
		got := e.Extract("banana abacaxi cereja")
		assert.Equal(t, []string{"banana", "abacaxi", "cereja"}, got)
	})

	t.Run("caps at twelve", func(t *testing.T) {
		var sb strings.Builder
		for _, w := range []string{
			"alpha", "bravo", "charlie", "delta", "echoo", "foxtrot", "golfe",
			"hotel", "india", "julieta", "kilos", "limao", "mango", "novembro",
		} {
			sb.WriteString(w + " ")
		}
		got := e.Extract(sb.String())
		assert.Len(t, got, maxKeywords)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, e.Extract("   "))
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "horas extras não pagas, jornada excedida, horas extras habituais, adicional noturno"
		first := e.Extract(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, e.Extract(text))
		}
	})
}

func TestExcerptWindows(t *testing.T) {
	t.Run("dedup and cap", func(t *testing.T) {
		src := "prefixo julgo improcedente sufixo"
		got := excerptWindows(src, []string{"improced", "improced", "julgo"})
		// same window text appears once even via different needles
		assert.LessOrEqual(t, len(got), 2)
		for _, w := range got {
			assert.Contains(t, w, "improcedente")
		}
	})

	t.Run("rune-safe boundaries", func(t *testing.T) {
		src := strings.Repeat("ã", 200) + "improcedente" + strings.Repeat("é", 200)
		got := excerptWindows(src, []string{"improced"})
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0], "ã") || strings.HasPrefix(got[0], "improced"))
		assert.Contains(t, got[0], "improcedente")
	})

	t.Run("case folding that changes byte length", func(t *testing.T) {
		// "Ⱥ" lowers to "ⱥ", which is one byte longer, so indexes found in
		// the lowered text must not be applied to the original
		src := strings.Repeat("Ⱥ", 200) + " improcedente"
		got := excerptWindows(src, []string{"improced"})
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "improcedente")
	})

	t.Run("absent needle yields nothing", func(t *testing.T) {
		assert.Empty(t, excerptWindows("texto qualquer", []string{"prescri"}))
	})
}
