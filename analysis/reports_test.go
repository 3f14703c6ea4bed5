package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivedSnapshot() CaseSnapshot {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 9, 15, 18, 30, 0, 0, time.UTC)
	closed := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	return CaseSnapshot{
		Title:           "Ação de cobrança",
		Area:            "Cível/Contratos",
		Status:          "Arquivado",
		CaseNumber:      "456",
		RulingOutcome:   "Acordo",
		SettlementValue: "R$ 12.000,00",
		Narrative:       "Cobrança de parcelas em atraso encerrada por acordo.",
		Attachments:     []Attachment{{Name: "acordo.pdf", URL: "https://files/acordo.pdf"}},
		CreatedAt:       &created,
		UpdatedAt:       &updated,
		ClosedAt:        &closed,
	}
}

func TestFinalReport(t *testing.T) {
	b := NewReportBuilder()

	got, err := b.FinalReport(archivedSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "Relatório Final Completo (PDF)", got.Title)
	assert.Equal(t, "Baixar PDF", got.Action)
	assert.Contains(t, got.Content, "RELATÓRIO FINAL — PRESTAÇÃO DE CONTAS")
	assert.Contains(t, got.Content, "- Título: Ação de cobrança")
	assert.Contains(t, got.Content, "2025-03-01T10:00:00Z: Processo cadastrado no sistema.")
	assert.Contains(t, got.Content, "2025-09-15T18:30:00Z: Última atualização registrada.")
	assert.Contains(t, got.Content, "2026-01-20T09:00:00Z: Arquivamento/encerramento registrado.")
	assert.Contains(t, got.Content, "- Valor acordado (se houver): R$ 12.000,00")
	assert.Contains(t, got.Content, "- acordo.pdf | https://files/acordo.pdf")
}

func TestFinalReportWithoutDates(t *testing.T) {
	b := NewReportBuilder()
	snap := archivedSnapshot()
	snap.CreatedAt, snap.UpdatedAt, snap.ClosedAt = nil, nil, nil
	snap.Attachments = nil

	got, err := b.FinalReport(snap)
	require.NoError(t, err)

	assert.Contains(t, got.Content, "- Sem datas suficientes para exibir histórico.")
	assert.Contains(t, got.Content, "- Nenhum anexo registrado.")
}

func TestReportsRequireArchivedStatus(t *testing.T) {
	b := NewReportBuilder()
	snap := archivedSnapshot()
	snap.Status = "Em andamento"

	_, err := b.FinalReport(snap)
	assert.ErrorIs(t, err, ErrCaseNotArchived)

	_, err = b.PreventiveGuide(snap)
	assert.ErrorIs(t, err, ErrCaseNotArchived)

	_, err = b.ClosingMessage(snap)
	assert.ErrorIs(t, err, ErrCaseNotArchived)
}

func TestArchivedStatusFoldsAccents(t *testing.T) {
	b := NewReportBuilder()
	snap := archivedSnapshot()
	snap.Status = "ARQUIVADO"

	_, err := b.FinalReport(snap)
	assert.NoError(t, err)
}

func TestPreventiveGuide(t *testing.T) {
	b := NewReportBuilder()

	got, err := b.PreventiveGuide(archivedSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "Guia de Orientações Futuras", got.Title)
	assert.Contains(t, got.Content, `processo "Ação de cobrança"`)
	assert.Contains(t, got.Content, "1) Organização")
	assert.Contains(t, got.Content, "3) Quando procurar o escritório novamente")
}

func TestClosingMessage(t *testing.T) {
	b := NewReportBuilder()

	got, err := b.ClosingMessage(archivedSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "Mensagem de Encerramento e NPS", got.Title)
	assert.Contains(t, got.Content, `"Ação de cobrança"`)
	assert.Contains(t, got.Content, "De 0 a 10")
}
