package handlers

import (
	"net/http"
	"strconv"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for cases
type CaseHandler struct {
	caseService *service.CaseService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService *service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// CreateCase handles POST /api/processos
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var body models.Case
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.caseService.CreateCase(c.Request.Context(), service.CreateCaseRequest{Case: &body})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, result.Case)
}

// GetCase handles GET /api/processos/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de processo inválido")
		return
	}

	result, err := h.caseService.GetCase(c.Request.Context(), service.GetCaseRequest{
		ID:   id,
		User: CurrentUser(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Case)
}

// UpdateCase handles PUT /api/processos/:id
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de processo inválido")
		return
	}

	var body models.Case
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	body.ID = id

	result, err := h.caseService.UpdateCase(c.Request.Context(), service.UpdateCaseRequest{Case: &body})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Case)
}

// ListCases handles GET /api/processos
func (h *CaseHandler) ListCases(c *gin.Context) {
	req := service.ListCasesRequest{
		User:   CurrentUser(c),
		Limit:  50,
		Offset: 0,
	}

	if status := c.Query("status"); status != "" {
		s := models.CaseStatus(status)
		req.Status = &s
	}
	if lawyer := c.Query("advogadoId"); lawyer != "" {
		id, err := uuid.Parse(lawyer)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "advogadoId inválido")
			return
		}
		req.LawyerID = &id
	}
	if client := c.Query("clienteId"); client != "" {
		id, err := uuid.Parse(client)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "clienteId inválido")
			return
		}
		req.ClientID = &id
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 && n <= 100 {
			req.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n >= 0 {
			req.Offset = n
		}
	}

	result, err := h.caseService.ListCases(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Cases)
}

// DeleteCase handles DELETE /api/processos/:id
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de processo inválido")
		return
	}

	_, err = h.caseService.DeleteCase(c.Request.Context(), service.DeleteCaseRequest{ID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Processo removido"})
}
