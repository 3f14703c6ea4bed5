package analysis

import "strings"

// Strategy is the etapa2 result: action type, candidate rights and thesis
// suggestions for the classified area.
type Strategy struct {
	Title string `json:"titulo"`
	StrategyTemplate
}

// StrategyAnalyzer selects the per-area strategy template and adjusts it
// with urgency signals found in the case text.
type StrategyAnalyzer struct {
	tables *Tables
}

// NewStrategyAnalyzer creates a strategy analyzer over the given tables.
func NewStrategyAnalyzer(t *Tables) *StrategyAnalyzer {
	return &StrategyAnalyzer{tables: t}
}

// Analyze returns the strategy for the classified area. Unclassified areas
// get the generic template with explicit placeholders; nothing is invented.
func (a *StrategyAnalyzer) Analyze(snap CaseSnapshot, area Area) Strategy {
	tpl, ok := a.tables.Strategies[area]
	if !ok {
		tpl = a.tables.DefaultStrategy
	}
	// copy the rights slice so the shared table is never aliased
	tpl.Rights = append([]string(nil), tpl.Rights...)

	text := strings.ToLower(snap.Title + " " + snap.Narrative)
	if containsAny(text, a.tables.UrgencyTerms) {
		tpl.Narrative += " Há sinais de urgência: avaliar tutela de urgência."
	}

	return Strategy{Title: "Análise Jurídica", StrategyTemplate: tpl}
}
