package service

import (
	"context"
	"errors"

	"lexflow-backend/analysis"
	"lexflow-backend/export"
	"lexflow-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrLeadNotFound = errors.New("lead not found")

// CaseSource loads cases with access control already applied
type CaseSource interface {
	CaseForUser(ctx context.Context, id uuid.UUID, user *models.User) (*models.Case, error)
}

// CaseAnalysisStore persists analysis documents on cases
type CaseAnalysisStore interface {
	UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis models.AnalysisDocument) error
}

// LeadStore loads leads and persists triage documents
type LeadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	UpdateTriage(ctx context.Context, id uuid.UUID, triage models.AnalysisDocument) error
}

// Analysis document keys on the case record
const (
	analysisKeyPipeline = "atendimento"
	analysisKeyRuling   = "pos"
)

// AnalysisService runs the rule-based analysis components over stored
// cases and leads. All computation is deterministic; the only I/O is the
// record read and the opt-in persistence write.
type AnalysisService struct {
	caseSource CaseSource
	caseStore  CaseAnalysisStore
	leadStore  LeadStore
	exporter   *export.Exporter

	tables    *analysis.Tables
	pipeline  *analysis.Pipeline
	ruling    *analysis.RulingAnalyzer
	triager   *analysis.Triager
	reports   *analysis.ReportBuilder
	extractor *analysis.KeywordExtractor
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithCaseSource sets the case source
func AnalysisWithCaseSource(src CaseSource) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.caseSource = src
	}
}

// AnalysisWithCaseStore sets the analysis persistence store
func AnalysisWithCaseStore(store CaseAnalysisStore) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.caseStore = store
	}
}

// AnalysisWithLeadStore sets the lead store
func AnalysisWithLeadStore(store LeadStore) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.leadStore = store
	}
}

// AnalysisWithExporter sets the PDF/archive exporter
func AnalysisWithExporter(e *export.Exporter) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.exporter = e
	}
}

// AnalysisWithTables sets the lexicon tables
func AnalysisWithTables(t *analysis.Tables) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.tables = t
	}
}

// NewAnalysisService creates an analysis service. Components share one
// immutable tables version for the life of the service.
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.tables == nil {
		s.tables = analysis.DefaultTables()
	}
	s.pipeline = analysis.NewPipeline(s.tables)
	s.ruling = analysis.NewRulingAnalyzer(s.tables)
	s.triager = analysis.NewTriager(s.tables)
	s.reports = analysis.NewReportBuilder()
	s.extractor = analysis.NewKeywordExtractor(s.tables)
	return s
}

// snapshotFromCase copies the stored case into the bounded form the
// analysis components consume
func snapshotFromCase(c *models.Case) analysis.CaseSnapshot {
	attachments := make([]analysis.Attachment, 0, len(c.Attachments))
	for _, a := range c.Attachments {
		attachments = append(attachments, analysis.Attachment{
			Name: a.Name,
			Type: a.Type,
			URL:  a.URL,
		})
	}

	createdAt := c.CreatedAt
	updatedAt := c.UpdatedAt

	return analysis.CaseSnapshot{
		ID:              c.ID.String(),
		Title:           c.Title,
		Narrative:       c.Description,
		Area:            c.Area,
		Status:          string(c.Status),
		Urgency:         c.Urgency,
		CaseNumber:      c.CaseNumber,
		SettlementValue: c.SettlementValue,
		RulingOutcome:   c.RulingOutcome,
		RulingText:      c.RulingText,
		Attachments:     attachments,
		CreatedAt:       &createdAt,
		UpdatedAt:       &updatedAt,
		ClosedAt:        c.ClosedAt,
	}
}

func (s *AnalysisService) loadCase(ctx context.Context, id uuid.UUID, user *models.User) (*models.Case, error) {
	if s.caseSource == nil {
		return nil, errors.New("case source not set")
	}
	return s.caseSource.CaseForUser(ctx, id, user)
}

// persistAnalysis writes one analysis kind into the case's document,
// keeping the others intact
func (s *AnalysisService) persistAnalysis(ctx context.Context, c *models.Case, key string, value interface{}) error {
	if s.caseStore == nil {
		return errors.New("case analysis store not set")
	}
	doc := c.Analysis
	if doc == nil {
		doc = make(models.AnalysisDocument)
	}
	doc[key] = value
	return s.caseStore.UpdateAnalysis(ctx, c.ID, doc)
}

// RunCaseAnalysisRequest represents a request to run the six-stage pipeline
type RunCaseAnalysisRequest struct {
	CaseID  uuid.UUID
	User    *models.User
	Persist bool
}

// RunCaseAnalysisResult represents the result of running the pipeline
type RunCaseAnalysisResult struct {
	Analysis *analysis.CaseAnalysis
}

// RunCaseAnalysis runs the six-stage pipeline over a stored case.
// Persistence is opt-in; the computed result is returned either way.
func (s *AnalysisService) RunCaseAnalysis(ctx context.Context, req RunCaseAnalysisRequest) (*RunCaseAnalysisResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	result := s.pipeline.Run(snapshotFromCase(c))

	if req.Persist {
		if err := s.persistAnalysis(ctx, c, analysisKeyPipeline, result); err != nil {
			return nil, err
		}
	}

	return &RunCaseAnalysisResult{Analysis: result}, nil
}

// AnalyzeRulingRequest represents a request to analyze a case's ruling
type AnalyzeRulingRequest struct {
	CaseID  uuid.UUID
	User    *models.User
	Persist bool
}

// AnalyzeRulingResult represents the result of a ruling analysis
type AnalyzeRulingResult struct {
	Analysis *analysis.RulingAnalysis
}

// AnalyzeRuling scores appeal viability for a stored case's ruling.
// Returns analysis.ErrRulingTextMissing when the case has no ruling text.
func (s *AnalysisService) AnalyzeRuling(ctx context.Context, req AnalyzeRulingRequest) (*AnalyzeRulingResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	result, err := s.ruling.Analyze(snapshotFromCase(c))
	if err != nil {
		return nil, err
	}

	if req.Persist {
		if err := s.persistAnalysis(ctx, c, analysisKeyRuling, result); err != nil {
			return nil, err
		}
	}

	return &AnalyzeRulingResult{Analysis: result}, nil
}

// ComposeArtifactRequest identifies the case an artifact is composed for
type ComposeArtifactRequest struct {
	CaseID uuid.UUID
	User   *models.User
}

// ComposeArtifactResult carries one composed text artifact
type ComposeArtifactResult struct {
	Artifact analysis.Artifact
}

// ClientMessage composes the plain-language post-ruling client message
func (s *AnalysisService) ClientMessage(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	snap := snapshotFromCase(c)
	result, err := s.ruling.Analyze(snap)
	if err != nil {
		return nil, err
	}

	return &ComposeArtifactResult{Artifact: analysis.ComposeClientMessage(snap, result)}, nil
}

// StrategyGuide composes the post-ruling strategy guide
func (s *AnalysisService) StrategyGuide(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	result, err := s.ruling.Analyze(snapshotFromCase(c))
	if err != nil {
		return nil, err
	}

	return &ComposeArtifactResult{Artifact: analysis.ComposeStrategyGuide(result)}, nil
}

// AppealDraft composes the appeal-draft skeleton
func (s *AnalysisService) AppealDraft(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	snap := snapshotFromCase(c)
	result, err := s.ruling.Analyze(snap)
	if err != nil {
		return nil, err
	}

	keywords := s.extractor.Extract(snap.Narrative + "\n" + snap.RulingText)
	return &ComposeArtifactResult{Artifact: analysis.ComposeAppealDraft(snap, result, keywords)}, nil
}

// SearchQueryResult carries the precedent-search contract and its visual
type SearchQueryResult struct {
	Artifact analysis.Artifact
	Query    analysis.SearchQuery
}

// SearchQuery builds the precedent-search contract for a case
func (s *AnalysisService) SearchQuery(ctx context.Context, req ComposeArtifactRequest) (*SearchQueryResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	artifact, query := analysis.BuildSearchQuery(snapshotFromCase(c), s.extractor)
	return &SearchQueryResult{Artifact: artifact, Query: query}, nil
}

// FinalReport composes the accountability report of an archived case.
// Returns analysis.ErrCaseNotArchived for any other status.
func (s *AnalysisService) FinalReport(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	artifact, err := s.reports.FinalReport(snapshotFromCase(c))
	if err != nil {
		return nil, err
	}

	return &ComposeArtifactResult{Artifact: artifact}, nil
}

// PreventiveGuide composes the post-closure preventive guide
func (s *AnalysisService) PreventiveGuide(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	artifact, err := s.reports.PreventiveGuide(snapshotFromCase(c))
	if err != nil {
		return nil, err
	}

	return &ComposeArtifactResult{Artifact: artifact}, nil
}

// ClosingMessage composes the case-closure message with the NPS question
func (s *AnalysisService) ClosingMessage(ctx context.Context, req ComposeArtifactRequest) (*ComposeArtifactResult, error) {
	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	artifact, err := s.reports.ClosingMessage(snapshotFromCase(c))
	if err != nil {
		return nil, err
	}

	return &ComposeArtifactResult{Artifact: artifact}, nil
}

// ExportRequest represents a request to export a case analysis
type ExportRequest struct {
	CaseID uuid.UUID
	User   *models.User
}

// ExportResult carries a rendered artifact file
type ExportResult struct {
	FileName string
	Data     []byte
}

// ExportPDF runs the pipeline and renders the analysis report PDF
func (s *AnalysisService) ExportPDF(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if s.exporter == nil {
		return nil, errors.New("exporter not set")
	}

	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	snap := analysis.Normalize(snapshotFromCase(c))
	data, err := s.exporter.ExportPDF(snap, s.pipeline.Run(snap))
	if err != nil {
		return nil, err
	}

	return &ExportResult{FileName: export.ReportFileName, Data: data}, nil
}

// ExportBundle runs the pipeline and renders the full ZIP bundle
func (s *AnalysisService) ExportBundle(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if s.exporter == nil {
		return nil, errors.New("exporter not set")
	}

	c, err := s.loadCase(ctx, req.CaseID, req.User)
	if err != nil {
		return nil, err
	}

	snap := analysis.Normalize(snapshotFromCase(c))
	data, err := s.exporter.ExportBundle(snap, s.pipeline.Run(snap))
	if err != nil {
		return nil, err
	}

	return &ExportResult{FileName: export.BundleFileName, Data: data}, nil
}

// FinalReportPDF renders the archived-case final report as a PDF
func (s *AnalysisService) FinalReportPDF(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if s.exporter == nil {
		return nil, errors.New("exporter not set")
	}

	result, err := s.FinalReport(ctx, ComposeArtifactRequest{CaseID: req.CaseID, User: req.User})
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportArtifact(result.Artifact)
	if err != nil {
		return nil, err
	}

	return &ExportResult{FileName: export.FinalReportFileName, Data: data}, nil
}

// TriageLeadRequest represents a request to triage a lead
type TriageLeadRequest struct {
	LeadID  uuid.UUID
	Persist bool
}

// TriageLeadResult represents the result of a lead triage
type TriageLeadResult struct {
	Triage analysis.TriageResult
}

// TriageLead runs the intake triage rules over a stored lead
func (s *AnalysisService) TriageLead(ctx context.Context, req TriageLeadRequest) (*TriageLeadResult, error) {
	if s.leadStore == nil {
		return nil, errors.New("lead store not set")
	}

	lead, err := s.leadStore.GetByID(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	result := s.triager.Triage(analysis.LeadSnapshot{
		ID:             lead.ID.String(),
		Category:       lead.Category,
		Urgency:        lead.Urgency,
		Goal:           lead.Goal,
		RelationType:   lead.RelationType,
		IncidentDate:   lead.IncidentDate,
		OngoingProblem: lead.OngoingProblem,
		ProblemSummary: lead.ProblemSummary,
		Message:        lead.Message,
		ExtraInfo:      lead.ExtraInfo,
		Documents:      lead.Documents,
	})

	if req.Persist {
		doc := models.AnalysisDocument{
			"resumo":       result.Summary,
			"triagem":      result.Triage,
			"documentos":   result.Documents,
			"parecer":      result.Opinion,
			"docsEnviados": []string(lead.Documents),
		}
		if err := s.leadStore.UpdateTriage(ctx, lead.ID, doc); err != nil {
			return nil, err
		}
	}

	return &TriageLeadResult{Triage: result}, nil
}
