package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCaseNotArchived reports that a closing report was requested for a
// case that is not archived yet.
var ErrCaseNotArchived = errors.New("este relatório é permitido apenas para processos com status 'Arquivado'")

const maxReportAttachments = 25

// ReportBuilder produces the closing artifacts of an archived case: the
// final accountability report, the preventive guide and the NPS message.
type ReportBuilder struct{}

// NewReportBuilder creates a report builder.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// archivedOnly normalizes the snapshot and enforces the archived-status
// gate shared by every closing artifact.
func (b *ReportBuilder) archivedOnly(snap CaseSnapshot) (CaseSnapshot, error) {
	snap = Normalize(snap)
	if foldDiacritics(strings.ToLower(snap.Status)) != "arquivado" {
		return snap, ErrCaseNotArchived
	}
	return snap, nil
}

// FinalReport renders the accountability report from the dates and data
// recorded in the system. Timeline entries come only from real timestamps.
func (b *ReportBuilder) FinalReport(snap CaseSnapshot) (Artifact, error) {
	snap, err := b.archivedOnly(snap)
	if err != nil {
		return Artifact{}, err
	}

	var timeline []string
	created := formatTimestamp(snap.CreatedAt)
	updated := formatTimestamp(snap.UpdatedAt)
	closed := formatTimestamp(snap.ClosedAt)
	if created != "" {
		timeline = append(timeline, fmt.Sprintf("- %s: Processo cadastrado no sistema.", created))
	}
	if updated != "" && updated != created {
		timeline = append(timeline, fmt.Sprintf("- %s: Última atualização registrada.", updated))
	}
	if closed != "" {
		timeline = append(timeline, fmt.Sprintf("- %s: Arquivamento/encerramento registrado.", closed))
	}
	if len(timeline) == 0 {
		timeline = append(timeline, "- Sem datas suficientes para exibir histórico.")
	}

	attachments := "- Nenhum anexo registrado."
	if len(snap.Attachments) > 0 {
		var lines []string
		for i, a := range snap.Attachments {
			if i == maxReportAttachments {
				break
			}
			line := "- " + a.Name
			if a.URL != "" {
				line += " | " + a.URL
			}
			lines = append(lines, line)
		}
		attachments = strings.Join(lines, "\n")
	}

	content := fmt.Sprintf(`RELATÓRIO FINAL — PRESTAÇÃO DE CONTAS

PROCESSO
- Título: %s
- Área: %s
- Status: %s
- Nº do processo: %s
- Resultado: %s

RESUMO DO CASO (conforme cadastro)
%s

LINHA DO TEMPO (com base em datas do sistema)
%s

VALORES
- Valor acordado (se houver): %s

ANEXOS (nomes/links)
%s

OBSERVAÇÃO
Este relatório é gerado a partir dos dados registrados no sistema. Caso existam atos/andamentos fora do sistema, eles não aparecerão aqui.`,
		orDash(snap.Title, "-"),
		orDash(snap.Area, "-"),
		orDash(snap.Status, "-"),
		orDash(snap.CaseNumber, "-"),
		orDash(snap.RulingOutcome, "-"),
		orDash(snap.Narrative, "(Sem descrição preenchida.)"),
		strings.Join(timeline, "\n"),
		orDash(snap.SettlementValue, "-"),
		attachments)

	return Artifact{
		Title:   "Relatório Final Completo (PDF)",
		Content: content,
		Action:  "Baixar PDF",
	}, nil
}

// PreventiveGuide renders general risk-reduction guidance for the client.
// Recommendations are fixed; the case only lends its title.
func (b *ReportBuilder) PreventiveGuide(snap CaseSnapshot) (Artifact, error) {
	snap, err := b.archivedOnly(snap)
	if err != nil {
		return Artifact{}, err
	}

	content := fmt.Sprintf(`GUIA PREVENTIVO — ORIENTAÇÕES FUTURAS

Com base no encerramento do processo "%s", seguem recomendações práticas para reduzir riscos semelhantes:

1) Organização
- Manter documentos e comprovantes em pasta digital (por ano e por assunto).
- Registrar comunicações importantes por escrito (e-mail/WhatsApp).

2) Conduta preventiva
- Antes de assinar documentos/contratos, revisar cláusulas essenciais.
- Em caso de notificação/intimação, não responder sem orientação jurídica.

3) Quando procurar o escritório novamente
- Recebeu notificação, multa, cobrança ou convocação oficial.
- Surgiu um novo fato relacionado ao mesmo tema do processo.

OFERTA (opcional)
Acompanhamento preventivo mensal (modelo):
- Revisão e orientação rápida em dúvidas
- Checklist de documentos e riscos
- Prioridade no atendimento

(Edite valores e condições do seu escritório antes de enviar ao cliente.)`,
		orDash(snap.Title, "-"))

	return Artifact{
		Title:   "Guia de Orientações Futuras",
		Content: content,
		Action:  "Copiar Texto",
	}, nil
}

// ClosingMessage renders the case-closure message with the NPS question.
func (b *ReportBuilder) ClosingMessage(snap CaseSnapshot) (Artifact, error) {
	snap, err := b.archivedOnly(snap)
	if err != nil {
		return Artifact{}, err
	}

	content := fmt.Sprintf(`Olá! 😊

Estou passando para te dar um fechamento oficial sobre o seu caso: "%s".
O processo foi encerrado e arquivado no nosso sistema.

✅ Se você quiser, posso te enviar um relatório final em PDF com:
- resumo do caso
- datas registradas no sistema
- anexos/links cadastrados
- valores (se houver)

📌 Uma pergunta rápida (NPS):
De 0 a 10, quanto você indicaria nosso escritório para um amigo/familiar?

Se puder, responda com um número e (opcional) uma frase do que mais gostou e o que poderíamos melhorar.
Isso ajuda muito a mantermos um atendimento excelente. 🙏`,
		orDash(snap.Title, "-"))

	return Artifact{
		Title:   "Mensagem de Encerramento e NPS",
		Content: content,
		Action:  "Copiar Texto",
	}, nil
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
