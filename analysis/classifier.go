package analysis

import "strings"

// AreaClassifier labels the legal domain of a snapshot with ordered
// substring matching. No scoring across rules: the first match wins.
type AreaClassifier struct {
	tables *Tables
}

// NewAreaClassifier creates a classifier over the given tables.
func NewAreaClassifier(t *Tables) *AreaClassifier {
	return &AreaClassifier{tables: t}
}

// Classify returns one of the fixed area labels, the declared area when no
// rule matches, or AreaAConfirmar when the declared area is also empty.
func (c *AreaClassifier) Classify(snap CaseSnapshot) Area {
	declared := strings.ToLower(snap.Area)
	text := strings.ToLower(snap.Title + " " + snap.Narrative)

	for _, rule := range c.tables.AreaRules {
		if containsAny(declared, rule.DeclaredTerms) || containsAny(text, rule.TextTerms) {
			return rule.Area
		}
	}
	if snap.Area != "" {
		return Area(snap.Area)
	}
	return AreaAConfirmar
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
