package analysis

// RoadmapGuide carries forward the strategy decisions the draft composer
// needs.
type RoadmapGuide struct {
	ActionType string `json:"tipoAcao"`
	Strategy   string `json:"estrategia"`
}

// Roadmap is the etapa3 result: the structural outline of the petition and
// generic legal-basis hints. Hints name statute families only; citations
// and case law are never fabricated, and the value of claim is always a
// prompt to compute from real figures.
type Roadmap struct {
	Title      string       `json:"titulo"`
	Structure  []string     `json:"estrutura"`
	LegalBases []string     `json:"fundamentos"`
	Precedents string       `json:"jurisprudencia"`
	ClaimValue string       `json:"valorCausa"`
	Guide      RoadmapGuide `json:"guia"`
}

// RoadmapBuilder produces the structural outline for an area.
type RoadmapBuilder struct {
	tables *Tables
}

// NewRoadmapBuilder creates a roadmap builder over the given tables.
func NewRoadmapBuilder(t *Tables) *RoadmapBuilder {
	return &RoadmapBuilder{tables: t}
}

// Build returns the outline and legal-basis hints for the area, keyed off
// the strategy produced in the previous stage.
func (b *RoadmapBuilder) Build(area Area, strategy Strategy) Roadmap {
	bases := b.tables.LegalBases[area]
	if bases == nil {
		bases = b.tables.DefaultLegalBases
	}

	return Roadmap{
		Title:      "Roteiro Jurídico",
		Structure:  append([]string(nil), b.tables.OutlineSections...),
		LegalBases: append([]string(nil), bases...),
		Precedents: "Sugestão: buscar precedentes do tribunal competente sobre o tema (não gerado automaticamente nesta versão).",
		ClaimValue: "A calcular: informar valores (prejuízo, salários, parcelas, pedidos).",
		Guide: RoadmapGuide{
			ActionType: strategy.ActionType,
			Strategy:   strategy.Narrative,
		},
	}
}
