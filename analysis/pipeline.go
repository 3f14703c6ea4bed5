package analysis

// CaseAnalysis is the six-stage bundle produced by one pipeline run.
type CaseAnalysis struct {
	Etapa1 DocumentChecklist `json:"etapa1"`
	Etapa2 Strategy          `json:"etapa2"`
	Etapa3 Roadmap           `json:"etapa3"`
	Etapa4 Draft             `json:"etapa4"`
	Etapa5 Review            `json:"etapa5"`
	Etapa6 ExportReadiness   `json:"etapa6"`
}

// Pipeline runs the six assembly stages over one snapshot. Every stage is
// a pure transformation of the snapshot and prior stage outputs, so a
// Pipeline is safe for concurrent use.
type Pipeline struct {
	classifier *AreaClassifier
	checklist  *ChecklistEngine
	strategy   *StrategyAnalyzer
	roadmap    *RoadmapBuilder
	composer   *DraftComposer
	reviewer   *QualityReviewer
	readiness  *ExportReadinessChecker
}

// NewPipeline creates a pipeline with every component bound to the same
// lexicon tables.
func NewPipeline(t *Tables) *Pipeline {
	return &Pipeline{
		classifier: NewAreaClassifier(t),
		checklist:  NewChecklistEngine(t),
		strategy:   NewStrategyAnalyzer(t),
		roadmap:    NewRoadmapBuilder(t),
		composer:   NewDraftComposer(),
		reviewer:   NewQualityReviewer(),
		readiness:  NewExportReadinessChecker(),
	}
}

// Run normalizes the snapshot and derives every stage from it in order.
func (p *Pipeline) Run(snap CaseSnapshot) *CaseAnalysis {
	snap = Normalize(snap)
	area := p.classifier.Classify(snap)

	etapa1 := p.checklist.Build(snap, area)
	etapa2 := p.strategy.Analyze(snap, area)
	etapa3 := p.roadmap.Build(area, etapa2)
	etapa4 := p.composer.Compose(snap, etapa2, etapa3)
	etapa5 := p.reviewer.Review(etapa4)
	etapa6 := p.readiness.Check(snap)

	return &CaseAnalysis{
		Etapa1: etapa1,
		Etapa2: etapa2,
		Etapa3: etapa3,
		Etapa4: etapa4,
		Etapa5: etapa5,
		Etapa6: etapa6,
	}
}
