package handlers

import (
	"net/http"

	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalysisHandler handles HTTP requests for the rule-based analysis
// endpoints
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// caseRequest is the shared body of the case-bound analysis endpoints
type caseRequest struct {
	CaseID  string `json:"processoId" binding:"required"`
	Persist bool   `json:"persistir"`
}

func (h *AnalysisHandler) bindCaseRequest(c *gin.Context) (uuid.UUID, bool, bool) {
	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return uuid.Nil, false, false
	}
	id, err := uuid.Parse(req.CaseID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "processoId inválido")
		return uuid.Nil, false, false
	}
	return id, req.Persist, true
}

// RunPipeline handles POST /api/ai/atendimento/executar
func (h *AnalysisHandler) RunPipeline(c *gin.Context) {
	id, persist, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.RunCaseAnalysis(c.Request.Context(), service.RunCaseAnalysisRequest{
		CaseID:  id,
		User:    CurrentUser(c),
		Persist: persist,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Analysis)
}

// ExportPDF handles POST /api/ai/atendimento/pdf
func (h *AnalysisHandler) ExportPDF(c *gin.Context) {
	id, _, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.ExportPDF(c.Request.Context(), service.ExportRequest{
		CaseID: id,
		User:   CurrentUser(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

// ExportBundle handles POST /api/ai/atendimento/exportar
func (h *AnalysisHandler) ExportBundle(c *gin.Context) {
	id, _, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.ExportBundle(c.Request.Context(), service.ExportRequest{
		CaseID: id,
		User:   CurrentUser(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, "application/zip", result.Data)
}

// AnalyzeRuling handles POST /api/ai/pos/sentenca/analisar
func (h *AnalysisHandler) AnalyzeRuling(c *gin.Context) {
	id, persist, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.AnalyzeRuling(c.Request.Context(), service.AnalyzeRulingRequest{
		CaseID:  id,
		User:    CurrentUser(c),
		Persist: persist,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Analysis)
}

func (h *AnalysisHandler) composeArtifact(c *gin.Context,
	compose func(*gin.Context, service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error)) {
	id, _, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := compose(c, service.ComposeArtifactRequest{CaseID: id, User: CurrentUser(c)})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Artifact)
}

// ClientMessage handles POST /api/ai/pos/cliente/tradutor
func (h *AnalysisHandler) ClientMessage(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.ClientMessage(c.Request.Context(), req)
	})
}

// StrategyGuide handles POST /api/ai/pos/estrategia/viabilidade
func (h *AnalysisHandler) StrategyGuide(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.StrategyGuide(c.Request.Context(), req)
	})
}

// AppealDraft handles POST /api/ai/pos/redacao/recurso
func (h *AnalysisHandler) AppealDraft(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.AppealDraft(c.Request.Context(), req)
	})
}

// SearchQuery handles POST /api/ai/pos/estrategia/datajud
func (h *AnalysisHandler) SearchQuery(c *gin.Context) {
	id, _, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.SearchQuery(c.Request.Context(), service.ComposeArtifactRequest{
		CaseID: id,
		User:   CurrentUser(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"artefato": result.Artifact,
		"consulta": result.Query,
	})
}

// FinalReport handles POST /api/ai/relatorio/final
func (h *AnalysisHandler) FinalReport(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.FinalReport(c.Request.Context(), req)
	})
}

// FinalReportPDF handles POST /api/ai/relatorio/final/pdf
func (h *AnalysisHandler) FinalReportPDF(c *gin.Context) {
	id, _, ok := h.bindCaseRequest(c)
	if !ok {
		return
	}

	result, err := h.analysisService.FinalReportPDF(c.Request.Context(), service.ExportRequest{
		CaseID: id,
		User:   CurrentUser(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

// PreventiveGuide handles POST /api/ai/relatorio/preventivo
func (h *AnalysisHandler) PreventiveGuide(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.PreventiveGuide(c.Request.Context(), req)
	})
}

// ClosingMessage handles POST /api/ai/relatorio/encerramento
func (h *AnalysisHandler) ClosingMessage(c *gin.Context) {
	h.composeArtifact(c, func(c *gin.Context, req service.ComposeArtifactRequest) (*service.ComposeArtifactResult, error) {
		return h.analysisService.ClosingMessage(c.Request.Context(), req)
	})
}

// TriageLead handles POST /api/ai/triagem
func (h *AnalysisHandler) TriageLead(c *gin.Context) {
	var req struct {
		LeadID  string `json:"leadId" binding:"required"`
		Persist bool   `json:"persistir"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	id, err := uuid.Parse(req.LeadID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "leadId inválido")
		return
	}

	result, err := h.analysisService.TriageLead(c.Request.Context(), service.TriageLeadRequest{
		LeadID:  id,
		Persist: req.Persist,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Triage)
}
