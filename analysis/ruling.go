package analysis

import (
	"errors"
	"strings"
)

// ErrRulingTextMissing reports that the case has no ruling text to
// analyze. The analyzer never invents an analysis; callers map this to a
// 400-style response with an {error} body.
var ErrRulingTextMissing = errors.New("processo não possui campo 'sentenca' preenchido")

// SignalHits lists which lexicon terms were found in the ruling text.
type SignalHits struct {
	Positive []string `json:"positivosDetectados"`
	Negative []string `json:"negativosDetectados"`
}

// RulingSummary is the structured digest of the ruling.
type RulingSummary struct {
	Area        string     `json:"area"`
	Status      string     `json:"status"`
	Outcome     string     `json:"resultadoSentenca"`
	Signals     SignalHits `json:"fundamentosProvaveis"`
	KeyExcerpts []string   `json:"trechosChave"`
}

// RulingParallel places the case narrative side by side with what the
// ruling actually says.
type RulingParallel struct {
	AllegedInCase      string   `json:"alegadoNoProcesso"`
	ObservedInRuling   string   `json:"observadoNaSentenca"`
	AttachmentsSummary []string `json:"anexosResumo"`
}

// RulingAnalysis is the appeal-viability assessment of a ruling against
// its case record.
type RulingAnalysis struct {
	Summary        RulingSummary  `json:"resumoEstruturado"`
	Parallel       RulingParallel `json:"paralelo"`
	Pros           []string       `json:"pros"`
	Cons           []string       `json:"contras"`
	Score          int            `json:"score"`
	Recommendation string         `json:"recomendacao"`
	Checklist      []string       `json:"checklist"`
}

// RulingAnalyzer compares a case narrative against the ruling text using
// fixed positive/negative legal-signal lexicons.
type RulingAnalyzer struct {
	tables *Tables
}

// NewRulingAnalyzer creates a ruling analyzer over the given tables.
func NewRulingAnalyzer(t *Tables) *RulingAnalyzer {
	return &RulingAnalyzer{tables: t}
}

// Analyze scores appeal viability for the snapshot's ruling. It returns
// ErrRulingTextMissing when the snapshot carries no ruling text; every
// other outcome, including a zero score, is a finding rather than an
// error.
func (a *RulingAnalyzer) Analyze(snap CaseSnapshot) (*RulingAnalysis, error) {
	snap = Normalize(snap)
	if snap.RulingText == "" {
		return nil, ErrRulingTextMissing
	}

	lower := strings.ToLower(snap.RulingText)
	negHits := matchedTerms(lower, a.tables.NegativeSignals)
	posHits := matchedTerms(lower, a.tables.PositiveSignals)

	needles := append(capTerms(negHits, 5), capTerms(posHits, 5)...)
	excerpts := excerptWindows(snap.RulingText, needles)

	hasDocs := len(snap.Attachments) > 0
	hasNarrative := snap.Narrative != ""

	score := a.score(hasDocs, hasNarrative, len(posHits), len(negHits))

	return &RulingAnalysis{
		Summary: RulingSummary{
			Area:        orDash(snap.Area, "A confirmar"),
			Status:      orDash(snap.Status, "-"),
			Outcome:     orDash(snap.RulingOutcome, "-"),
			Signals:     SignalHits{Positive: posHits, Negative: negHits},
			KeyExcerpts: excerpts,
		},
		Parallel: RulingParallel{
			AllegedInCase:      orDash(snap.Narrative, "(Descrição do processo não preenchida.)"),
			ObservedInRuling:   joinExcerpts(excerpts),
			AttachmentsSummary: attachmentNames(snap.Attachments, 20),
		},
		Pros:           a.pros(lower, posHits),
		Cons:           a.cons(hasDocs, hasNarrative, negHits),
		Score:          score,
		Recommendation: a.recommendation(score),
		Checklist:      append([]string(nil), a.tables.AppealChecklist...),
	}, nil
}

// score starts at the base, rewards minimal case preparation, and adjusts
// by capped signal counts, clamped to [0,100].
func (a *RulingAnalyzer) score(hasDocs, hasNarrative bool, posCount, negCount int) int {
	w := a.tables.Scoring

	score := w.Base
	if hasDocs {
		score += w.AttachmentsBonus
	}
	if hasNarrative {
		score += w.NarrativeBonus
	}
	score += minInt(w.PositiveCap, posCount*w.PositivePerHit)
	score -= minInt(w.NegativeCap, negCount*w.NegativePerHit)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (a *RulingAnalyzer) pros(lowerRuling string, posHits []string) []string {
	pros := []string{}
	if len(posHits) > 0 {
		pros = append(pros, "Há pontos acolhidos/trechos favoráveis na sentença (possível ampliar/defender em recurso).")
	}
	if strings.Contains(lowerRuling, "omiss") {
		pros = append(pros, "Possível omissão: verificar se todos os pedidos/teses foram enfrentados.")
	}
	if strings.Contains(lowerRuling, "contradi") {
		pros = append(pros, "Há menção a contradição: pode justificar embargos/ajustes antes do recurso.")
	}
	if strings.Contains(lowerRuling, "erro material") {
		pros = append(pros, "Possível erro material (datas/valores/nomes): pode ser corrigido e fortalecer o recurso.")
	}
	return pros
}

func (a *RulingAnalyzer) cons(hasDocs, hasNarrative bool, negHits []string) []string {
	cons := []string{}
	if !hasDocs {
		cons = append(cons, "Não há anexos no processo: recurso tende a ser fraco sem prova mínima/organização documental.")
	}
	if !hasNarrative {
		cons = append(cons, "Descrição do caso está curta/genérica: dificulta identificar teses e pontos atacáveis.")
	}
	if len(negHits) > 0 {
		cons = append(cons, "A sentença contém fundamentos desfavoráveis (ex.: ausência de prova / ônus da prova / prescrição). Recurso precisa atacar isso diretamente.")
	}
	return cons
}

func (a *RulingAnalyzer) recommendation(score int) string {
	w := a.tables.Scoring
	switch {
	case score >= w.ProceedThreshold:
		return "Há indicativos de viabilidade. Recomenda-se preparar o recurso com foco nos fundamentos centrais da sentença e reforçar precedentes."
	case score >= w.ModerateThreshold:
		return "Viabilidade moderada. Só vale avançar se houver argumento claro contra o fundamento do juiz e/ou prova relevante a acrescentar/ressaltar."
	default:
		return "Baixa viabilidade com os dados atuais. Recomenda-se reavaliar custo/benefício e checar se há omissão/erro material antes de recorrer."
	}
}

func matchedTerms(lower string, terms []string) []string {
	hits := []string{}
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

func capTerms(terms []string, n int) []string {
	if len(terms) > n {
		terms = terms[:n]
	}
	return append([]string(nil), terms...)
}

func attachmentNames(attachments []Attachment, limit int) []string {
	names := []string{}
	for _, a := range attachments {
		names = append(names, a.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}

func joinExcerpts(excerpts []string) string {
	if len(excerpts) == 0 {
		return "(Não foi possível extrair trechos automaticamente.)"
	}
	return strings.Join(excerpts, "\n\n---\n\n")
}

func orDash(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
