package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexflow-backend/analysis"
	"lexflow-backend/export"
	"lexflow-backend/models"
)

type fakeCaseSource struct {
	cases     map[uuid.UUID]*models.Case
	forbidden bool
}

func (f *fakeCaseSource) CaseForUser(ctx context.Context, id uuid.UUID, user *models.User) (*models.Case, error) {
	if f.forbidden {
		return nil, ErrForbidden
	}
	c, ok := f.cases[id]
	if !ok {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

type fakeAnalysisStore struct {
	saved map[uuid.UUID]models.AnalysisDocument
}

func (f *fakeAnalysisStore) UpdateAnalysis(ctx context.Context, id uuid.UUID, doc models.AnalysisDocument) error {
	if f.saved == nil {
		f.saved = make(map[uuid.UUID]models.AnalysisDocument)
	}
	f.saved[id] = doc
	return nil
}

type fakeLeadStore struct {
	leads  map[uuid.UUID]*models.Lead
	triage map[uuid.UUID]models.AnalysisDocument
}

func (f *fakeLeadStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return lead, nil
}

func (f *fakeLeadStore) UpdateTriage(ctx context.Context, id uuid.UUID, doc models.AnalysisDocument) error {
	if f.triage == nil {
		f.triage = make(map[uuid.UUID]models.AnalysisDocument)
	}
	f.triage[id] = doc
	return nil
}

func storedCase() *models.Case {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &models.Case{
		ID:          uuid.New(),
		Status:      models.CaseStatusOpen,
		Title:       "Reclamação trabalhista",
		Description: "Demitido sem registro em carteira e sem FGTS.",
		Area:        "Trabalhista",
		RulingText:  "Julgo improcedente por ausência de prova.",
		Attachments: models.CaseAttachments{{Name: "ctps.pdf"}},
		Analysis:    models.AnalysisDocument{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newTestService(c *models.Case, store *fakeAnalysisStore, leads *fakeLeadStore) *AnalysisService {
	source := &fakeCaseSource{cases: map[uuid.UUID]*models.Case{}}
	if c != nil {
		source.cases[c.ID] = c
	}
	return NewAnalysisService(
		AnalysisWithCaseSource(source),
		AnalysisWithCaseStore(store),
		AnalysisWithLeadStore(leads),
		AnalysisWithExporter(export.NewExporter(export.NewFPDFRenderer(), export.NewZipBuilder())),
	)
}

func TestRunCaseAnalysis(t *testing.T) {
	c := storedCase()
	store := &fakeAnalysisStore{}
	svc := newTestService(c, store, nil)

	t.Run("computes without persisting by default", func(t *testing.T) {
		got, err := svc.RunCaseAnalysis(context.Background(), RunCaseAnalysisRequest{CaseID: c.ID})
		require.NoError(t, err)
		assert.Equal(t, "Coleta de Documentos", got.Analysis.Etapa1.Title)
		assert.Empty(t, store.saved)
	})

	t.Run("persists under the pipeline key when asked", func(t *testing.T) {
		_, err := svc.RunCaseAnalysis(context.Background(), RunCaseAnalysisRequest{CaseID: c.ID, Persist: true})
		require.NoError(t, err)
		require.Contains(t, store.saved, c.ID)
		assert.Contains(t, store.saved[c.ID], "atendimento")
	})

	t.Run("unknown case", func(t *testing.T) {
		_, err := svc.RunCaseAnalysis(context.Background(), RunCaseAnalysisRequest{CaseID: uuid.New()})
		assert.ErrorIs(t, err, ErrCaseNotFound)
	})
}

func TestAnalyzeRuling(t *testing.T) {
	c := storedCase()
	store := &fakeAnalysisStore{}
	svc := newTestService(c, store, nil)

	t.Run("scores the ruling", func(t *testing.T) {
		got, err := svc.AnalyzeRuling(context.Background(), AnalyzeRulingRequest{CaseID: c.ID, Persist: true})
		require.NoError(t, err)
		assert.NotZero(t, got.Analysis.Score)
		assert.Contains(t, store.saved[c.ID], "pos")
	})

	t.Run("missing ruling text surfaces the sentinel", func(t *testing.T) {
		bare := storedCase()
		bare.RulingText = ""
		svc := newTestService(bare, &fakeAnalysisStore{}, nil)

		_, err := svc.AnalyzeRuling(context.Background(), AnalyzeRulingRequest{CaseID: bare.ID})
		assert.ErrorIs(t, err, analysis.ErrRulingTextMissing)
	})

	t.Run("access denials pass through", func(t *testing.T) {
		svc := NewAnalysisService(AnalysisWithCaseSource(&fakeCaseSource{forbidden: true}))
		_, err := svc.AnalyzeRuling(context.Background(), AnalyzeRulingRequest{CaseID: c.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestComposedArtifacts(t *testing.T) {
	c := storedCase()
	svc := newTestService(c, &fakeAnalysisStore{}, nil)
	ctx := context.Background()
	req := ComposeArtifactRequest{CaseID: c.ID}

	t.Run("client message", func(t *testing.T) {
		got, err := svc.ClientMessage(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, got.Artifact.Content, c.Title)
	})

	t.Run("strategy guide", func(t *testing.T) {
		got, err := svc.StrategyGuide(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, got.Artifact.Content, "Score de viabilidade:")
	})

	t.Run("appeal draft includes extracted keywords", func(t *testing.T) {
		got, err := svc.AppealDraft(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, got.Artifact.Content, "MINUTA — RECURSO")
		assert.Contains(t, got.Artifact.Content, "fgts")
	})

	t.Run("search query", func(t *testing.T) {
		got, err := svc.SearchQuery(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Trabalhista", got.Query.Filters.Area)
		assert.NotEmpty(t, got.Query.Keywords)
	})
}

func TestClosingArtifactsRequireArchivedCase(t *testing.T) {
	c := storedCase()
	svc := newTestService(c, &fakeAnalysisStore{}, nil)
	ctx := context.Background()
	req := ComposeArtifactRequest{CaseID: c.ID}

	_, err := svc.FinalReport(ctx, req)
	assert.ErrorIs(t, err, analysis.ErrCaseNotArchived)

	closed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c.Status = models.CaseStatusArchived
	c.ClosedAt = &closed

	report, err := svc.FinalReport(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, report.Artifact.Content, "RELATÓRIO FINAL")

	guide, err := svc.PreventiveGuide(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, guide.Artifact.Content, "GUIA PREVENTIVO")

	msg, err := svc.ClosingMessage(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, msg.Artifact.Content, "NPS")

	pdf, err := svc.FinalReportPDF(ctx, ExportRequest{CaseID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "relatorio_final.pdf", pdf.FileName)
	assert.NotEmpty(t, pdf.Data)
}

func TestExportOperations(t *testing.T) {
	c := storedCase()
	svc := newTestService(c, &fakeAnalysisStore{}, nil)
	ctx := context.Background()

	pdf, err := svc.ExportPDF(ctx, ExportRequest{CaseID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "relatorio_ia_processo.pdf", pdf.FileName)
	assert.NotEmpty(t, pdf.Data)

	bundle, err := svc.ExportBundle(ctx, ExportRequest{CaseID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "exportacao_processo.zip", bundle.FileName)
	assert.NotEmpty(t, bundle.Data)
}

func TestTriageLead(t *testing.T) {
	lead := &models.Lead{
		ID:       uuid.New(),
		Status:   models.LeadStatusNew,
		Category: "Trabalhista",
		Urgency:  "Alta",
		Message:  "Fui demitido sem justa causa.",
	}
	leads := &fakeLeadStore{leads: map[uuid.UUID]*models.Lead{lead.ID: lead}}
	svc := newTestService(nil, nil, leads)

	t.Run("runs the triage rules", func(t *testing.T) {
		got, err := svc.TriageLead(context.Background(), TriageLeadRequest{LeadID: lead.ID})
		require.NoError(t, err)
		assert.Contains(t, got.Triage.Triage, "Prioridade sugerida: Alta.")
		assert.Contains(t, got.Triage.Documents, "CTPS")
		assert.Empty(t, leads.triage)
	})

	t.Run("persists when asked", func(t *testing.T) {
		_, err := svc.TriageLead(context.Background(), TriageLeadRequest{LeadID: lead.ID, Persist: true})
		require.NoError(t, err)
		require.Contains(t, leads.triage, lead.ID)
		assert.Contains(t, leads.triage[lead.ID], "parecer")
	})

	t.Run("unknown lead", func(t *testing.T) {
		_, err := svc.TriageLead(context.Background(), TriageLeadRequest{LeadID: uuid.New()})
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}
