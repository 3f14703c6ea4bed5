package analysis

import (
	"fmt"
	"strings"
)

// Artifact is a ready-to-send text product with a suggested UI action.
type Artifact struct {
	Title   string `json:"titulo"`
	Content string `json:"conteudo"`
	Action  string `json:"acao"`
}

// SearchFilters narrow a precedent search to the case at hand.
type SearchFilters struct {
	Area       string `json:"area"`
	CaseNumber string `json:"numeroProcesso"`
}

// SearchQuery is the structured precedent-lookup contract: ranked keywords
// plus case filters, ready for an external search API.
type SearchQuery struct {
	Query    string        `json:"query"`
	Filters  SearchFilters `json:"filtros"`
	Keywords []string      `json:"keywords"`
}

// ComposeClientMessage renders the plain-language status message sent to
// the client after a ruling. Pure formatting over the analysis.
func ComposeClientMessage(snap CaseSnapshot, analysis *RulingAnalysis) Artifact {
	title := orDash(snap.Title, "Processo")
	area := orDash(snap.Area, "área não informada")
	outcome := orDash(snap.RulingOutcome, "resultado não informado")

	steps := analysis.Checklist
	if len(steps) > 3 {
		steps = steps[:3]
	}
	var stepLines []string
	for _, s := range steps {
		stepLines = append(stepLines, "- "+s)
	}

	msg := fmt.Sprintf(`Olá! Tudo bem? 😊

Saiu uma decisão do juiz (sentença) no processo "%s" (%s).

📌 Resultado: %s.
📍 O que isso significa em linguagem simples:
- O juiz analisou os pedidos e tomou uma decisão com base nos documentos e nos fatos apresentados.
- Neste momento, o escritório está avaliando se vale a pena recorrer.

✅ Próximos passos (do escritório):
%s

Assim que fecharmos a estratégia, te avisamos com clareza sobre as chances e os custos/benefícios de seguir.`,
		title, area, outcome, strings.Join(stepLines, "\n"))

	return Artifact{
		Title:   "Explicação para o Cliente (WhatsApp/Email)",
		Content: msg,
		Action:  "Copiar Texto",
	}
}

// ComposeStrategyGuide renders the post-ruling strategy guide: what to
// attack, pros, risks, checklist and the viability verdict.
func ComposeStrategyGuide(analysis *RulingAnalysis) Artifact {
	content := fmt.Sprintf(`Guia de Estratégia (Pós-Sentença)

1) O que atacar no recurso:
- Foco no fundamento determinante da sentença (núcleo do indeferimento).
- Evitar repetir a inicial; estruturar resposta direta ao motivo do juiz.

2) Pontos positivos:
%s

3) Pontos de risco:
%s

4) Checklist prático:
%s

Score de viabilidade: %d/100
Recomendação: %s`,
		bulletList(analysis.Pros, "- Nenhum ponto positivo detectado automaticamente. Revisar manualmente."),
		bulletList(analysis.Cons, "- Nenhum risco detectado automaticamente. Revisar manualmente."),
		bulletList(analysis.Checklist, "-"),
		analysis.Score,
		analysis.Recommendation)

	return Artifact{
		Title:   "Estratégia Recursal — Viabilidade e Checklist",
		Content: content,
		Action:  "Gerar PDF",
	}
}

// ComposeAppealDraft renders the appeal-draft skeleton. It structures the
// attack on the determinative ground; it never writes the argument itself.
func ComposeAppealDraft(snap CaseSnapshot, analysis *RulingAnalysis, keywords []string) Artifact {
	excerpts := "(Inserir trechos essenciais da sentença.)"
	if len(analysis.Summary.KeyExcerpts) > 0 {
		excerpts = strings.Join(analysis.Summary.KeyExcerpts, "\n\n")
	}

	content := fmt.Sprintf(`MINUTA — RECURSO (MODELO BASE)

Processo: %s
Número: %s
Área: %s

I — SÍNTESE DO CASO
%s

II — SÍNTESE DA SENTENÇA (PONTOS RELEVANTES)
%s

III — RAZÕES PARA REFORMA/ANULAÇÃO (ESTRUTURA)
1) Ataque ao fundamento determinante
- (Escrever aqui o motivo principal usado pelo juiz e a resposta direta)

2) Omissões/contradições/erro material (se houver)
- (Listar e fundamentar)

3) Reforço probatório e precedentes
- Palavras-chave para busca: %s

IV — PEDIDOS
- Conhecimento do recurso
- Reforma/Anulação nos pontos indicados
- Demais requerimentos cabíveis

(Observação: ajustar a espécie recursal conforme o rito/tribunal competente.)`,
		orDash(snap.Title, "Processo"),
		snap.CaseNumber,
		orDash(snap.Area, "A confirmar"),
		orDash(snap.Narrative, "(Descrição não preenchida.)"),
		excerpts,
		strings.Join(keywords, ", "))

	return Artifact{
		Title:   "Minuta de Recurso (Modelo Base)",
		Content: content,
		Action:  "Exportar (TXT/PDF)",
	}
}

// BuildSearchQuery extracts ranked keywords from the case narrative plus
// ruling text and packages them with case filters for precedent lookup.
func BuildSearchQuery(snap CaseSnapshot, extractor *KeywordExtractor) (Artifact, SearchQuery) {
	keywords := extractor.Extract(snap.Narrative + "\n" + snap.RulingText)

	query := SearchQuery{
		Query: strings.Join(keywords, " "),
		Filters: SearchFilters{
			Area:       snap.Area,
			CaseNumber: snap.CaseNumber,
		},
		Keywords: keywords,
	}

	content := fmt.Sprintf(`Pesquisa de Precedentes (contrato pronto para API)

Palavras-chave sugeridas:
%s

Query sugerida:
%s

Filtros sugeridos:
- Área: %s
- Nº processo: %s`,
		bulletList(keywords, "- (Sem palavras-chave suficientes; preencha descrição/sentença.)"),
		orDash(query.Query, "(vazia)"),
		orDash(snap.Area, "-"),
		orDash(snap.CaseNumber, "-"))

	return Artifact{
		Title:   "Consulta de Jurisprudência (Visual)",
		Content: content,
		Action:  "Copiar Query",
	}, query
}

func bulletList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	var lines []string
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
