package analysis

// Area is a classified legal domain label. Classification may also fall
// back to the case's declared free-text area, so Area is not a closed set;
// the constants below are the only labels the classifier itself produces.
type Area string

const (
	AreaTrabalhista Area = "Trabalhista"
	AreaFamilia     Area = "Família"
	AreaConsumidor  Area = "Consumidor"
	AreaCivel       Area = "Cível/Contratos"
	AreaAConfirmar  Area = "A confirmar"
)

// AreaRule matches one classified area. DeclaredTerms run against the
// case's declared area field, TextTerms against title + narrative.
type AreaRule struct {
	Area          Area
	DeclaredTerms []string
	TextTerms     []string
}

// StrategyTemplate is the per-area legal strategy suggestion set.
type StrategyTemplate struct {
	ActionType      string   `json:"tipoAcao"`
	Rights          []string `json:"direitos"`
	PrimaryThesis   string   `json:"tesePrincipal"`
	SecondaryThesis string   `json:"teseSecundaria"`
	Narrative       string   `json:"estrategia"`
}

// ScoringWeights are the appeal-viability score parameters. They have no
// stated normative basis and are versioned with the tables so a domain
// expert can revise them in one place.
type ScoringWeights struct {
	Base              int
	AttachmentsBonus  int
	NarrativeBonus    int
	PositivePerHit    int
	PositiveCap       int
	NegativePerHit    int
	NegativeCap       int
	ProceedThreshold  int
	ModerateThreshold int
}

// TriageRule maps a lead category (by substring) to a suggested-document
// list. Rules are checked in order; first match wins.
type TriageRule struct {
	CategoryTerms []string
	Documents     []string
}

// Tables holds every lexicon, template and weight the pipeline consumes.
// A Tables value is immutable after construction; components receive it at
// build time and never write to it.
type Tables struct {
	Version string

	// Classification, checked in order; first match wins.
	AreaRules []AreaRule

	// Required documents per area plus the generic default list.
	RequiredDocs map[Area][]string
	DefaultDocs  []string

	// Checklist special cases.
	IdentityTerms      []string // labels downgraded to warning when missing
	PhotoTerms         []string // attachment names suggesting capture/screenshot
	ConversationLabels []string // checklist labels subject to legibility review

	// Strategy templates per area plus the generic fallback.
	Strategies      map[Area]StrategyTemplate
	DefaultStrategy StrategyTemplate
	UrgencyTerms    []string

	// Roadmap.
	OutlineSections   []string
	LegalBases        map[Area][]string
	DefaultLegalBases []string

	// Ruling analysis.
	NegativeSignals []string
	PositiveSignals []string
	AppealChecklist []string
	Scoring         ScoringWeights

	// Keyword extraction.
	Stopwords []string

	// Lead triage.
	TriageRules []TriageRule
	TriageDocs  []string // fallback list when no rule matches
}

// DefaultTables returns the canonical v1 lexicon set.
func DefaultTables() *Tables {
	return &Tables{
		Version: "v1",

		AreaRules: []AreaRule{
			{
				Area:          AreaTrabalhista,
				DeclaredTerms: []string{"trabalh"},
				TextTerms:     []string{"clt", "fgts", "demiss", "verbas rescisórias", "sem registro"},
			},
			{
				Area:          AreaFamilia,
				DeclaredTerms: []string{"fam"},
				TextTerms:     []string{"guarda", "pensão", "divórc", "alimentos"},
			},
			{
				Area:          AreaConsumidor,
				DeclaredTerms: []string{"consum"},
				TextTerms:     []string{"produto", "reembolso", "cobrança"},
			},
			{
				Area:          AreaCivel,
				DeclaredTerms: []string{"civel", "civil"},
				TextTerms:     []string{"contrato", "inadimpl"},
			},
		},

		RequiredDocs: map[Area][]string{
			AreaTrabalhista: {
				"RG e CPF",
				"Comprovante de Residência",
				"Carteira de Trabalho (CTPS)",
				"Holerites",
				"Extrato FGTS",
				"Comprovantes de jornada (ponto/escala)",
				"Conversas/Emails (se houver)",
			},
			AreaConsumidor: {
				"RG e CPF",
				"Comprovante de Residência",
				"Nota fiscal / comprovante de compra",
				"Contrato/termos (se houver)",
				"Protocolos de atendimento",
				"Prints/Conversas",
				"Faturas/Boletos (se houver)",
			},
			AreaFamilia: {
				"RG e CPF",
				"Comprovante de Residência",
				"Certidões (nascimento/casamento)",
				"Provas (mensagens/fotos)",
				"Comprovantes de renda",
				"Documentos das partes",
			},
		},
		DefaultDocs: []string{
			"RG e CPF",
			"Comprovante de Residência",
			"Contrato/recibos (se houver)",
			"Provas (prints, fotos, mensagens)",
			"Comprovantes de pagamento",
		},

		IdentityTerms:      []string{"rg", "cpf"},
		PhotoTerms:         []string{"foto", "print", "whatsapp"},
		ConversationLabels: []string{"prints", "conversas"},

		Strategies: map[Area]StrategyTemplate{
			AreaTrabalhista: {
				ActionType:      "Reclamação Trabalhista - Rito a definir",
				Rights:          []string{"Verbas rescisórias", "FGTS", "Horas extras (se aplicável)", "Multas CLT (se cabível)"},
				PrimaryThesis:   "Irregularidades no vínculo/jornada/verbas (conforme descrição e provas).",
				SecondaryThesis: "Dano moral por conduta reiterada (se houver base fática).",
				Narrative:       "Organizar cronologia (admissão→função→jornada→demissão) e separar prova documental e testemunhal.",
			},
			AreaConsumidor: {
				ActionType:      "Ação de Obrigação de Fazer/Indenização (CDC)",
				Rights:          []string{"Reembolso/abatimento", "Cumprimento forçado", "Danos materiais", "Danos morais (se cabível)"},
				PrimaryThesis:   "Falha na prestação / defeito do produto/serviço.",
				SecondaryThesis: "Dano moral por desvio produtivo/abuso (se aplicável).",
				Narrative:       "Priorizar comprovantes, protocolos e tentativa de solução. Quantificar prejuízos.",
			},
			AreaFamilia: {
				ActionType:      "Ação de Família (conforme objetivo)",
				Rights:          []string{"Alimentos", "Guarda", "Visitas", "Partilha (se cabível)"},
				PrimaryThesis:   "Definir pedido principal conforme fatos (guarda/alimentos/divórcio).",
				SecondaryThesis: "Tutela provisória (se urgência).",
				Narrative:       "Checar documentos, avaliar urgência e preparar pedido provisório se necessário.",
			},
			AreaCivel: {
				ActionType:      "Ação Cível (conforme pedido)",
				Rights:          []string{"Obrigação", "Indenização", "Cumprimento contratual (se cabível)"},
				PrimaryThesis:   "Inadimplemento/descumprimento/lesão a direito (conforme fatos).",
				SecondaryThesis: "Danos morais/materiais (se quantificáveis).",
				Narrative:       "Mapear prova mínima, definir pedidos e estimar valor da causa.",
			},
		},
		DefaultStrategy: StrategyTemplate{
			ActionType:      "A definir",
			Rights:          []string{},
			PrimaryThesis:   "A confirmar com base nos fatos.",
			SecondaryThesis: "Opcional: definir após revisão das provas.",
			Narrative:       "Complete fatos e anexos para sugestões mais específicas.",
		},
		UrgencyTerms: []string{"liminar", "urgente", "tutela"},

		OutlineSections: []string{
			"Fatos",
			"Do direito",
			"Da competência",
			"Dos pedidos",
			"Das provas",
			"Do valor da causa",
			"Requerimentos finais",
		},
		LegalBases: map[Area][]string{
			AreaTrabalhista: {"CLT (dispositivos aplicáveis)", "Súmulas/TST conforme tema"},
			AreaConsumidor:  {"CDC (arts. aplicáveis)", "Jurisprudência do tribunal competente"},
			AreaFamilia:     {"CC/Lei de Alimentos/ECA (conforme caso)"},
		},
		DefaultLegalBases: []string{"Legislação aplicável", "Precedentes do tribunal competente"},

		NegativeSignals: []string{
			"improced", "indefer", "não comprov", "ausência de prova",
			"ônus da prova", "prescri", "ilegitim", "inépcia", "carência",
		},
		PositiveSignals: []string{
			"proced", "conden", "reconhec", "defiro", "parcialmente", "acolho", "defer",
		},
		AppealChecklist: []string{
			"Identificar qual fundamento foi determinante para o indeferimento (núcleo da sentença).",
			"Verificar se todos os pedidos foram enfrentados (omissão) e se há contradições/erro material.",
			"Separar anexos por tema (prova do fato, documentos pessoais, contratos, laudos).",
			"Definir tese recursal: atacar fundamento determinante (não só repetir a inicial).",
			"Levantar precedentes do tribunal competente sobre o tema.",
		},
		Scoring: ScoringWeights{
			Base:              50,
			AttachmentsBonus:  10,
			NarrativeBonus:    10,
			PositivePerHit:    3,
			PositiveCap:       10,
			NegativePerHit:    6,
			NegativeCap:       20,
			ProceedThreshold:  70,
			ModerateThreshold: 45,
		},

		Stopwords: []string{
			"que", "para", "com", "sem", "uma", "por", "dos", "das", "de", "do", "da",
			"em", "no", "na", "nos", "nas", "ao", "aos", "às", "as", "os", "um",
			"uns", "umas", "e", "ou", "se", "ser", "foi", "são", "isso",
			"art", "art.", "lei", "juiz", "sentença", "processo", "autos",
			"autor", "réu", "requerente", "requerido",
		},

		TriageRules: []TriageRule{
			{
				CategoryTerms: []string{"trabalh"},
				Documents:     []string{"CTPS", "Holerites", "Extrato FGTS", "Comprovantes de ponto", "Conversas/Emails"},
			},
			{
				CategoryTerms: []string{"fam"},
				Documents:     []string{"Certidões (nascimento/casamento)", "Comprovante de residência", "Provas (mensagens/fotos)", "Documentos das partes"},
			},
			{
				CategoryTerms: []string{"consum"},
				Documents:     []string{"Contrato/Comprovante de compra", "Nota fiscal", "Protocolos de atendimento", "Prints/Conversas"},
			},
			{
				CategoryTerms: []string{"civel", "civil"},
				Documents:     []string{"Contratos", "Comprovantes de pagamento", "Notificações", "Conversas/Emails"},
			},
		},
		TriageDocs: []string{
			"Documentos pessoais",
			"Comprovantes relacionados ao fato",
			"Conversas/Emails/Prints",
			"Contratos (se houver)",
		},
	}
}
