package handlers

import (
	"net/http"
	"strconv"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for intake leads
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /api/leads. This route is public: it receives
// the intake form from the site.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var body models.Lead
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, lead)
}

// GetLead handles GET /api/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de lead inválido")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, lead)
}

// UpdateLead handles PUT /api/leads/:id
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de lead inválido")
		return
	}

	var body models.Lead
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	body.ID = id

	lead, err := h.leadService.UpdateLead(c.Request.Context(), &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, lead)
}

// ListLeads handles GET /api/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var status *models.LeadStatus
	if q := c.Query("status"); q != "" {
		s := models.LeadStatus(q)
		status = &s
	}

	limit, offset := 50, 0
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if q := c.Query("offset"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n >= 0 {
			offset = n
		}
	}

	leads, err := h.leadService.ListLeads(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, leads)
}

// DeleteLead handles DELETE /api/leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de lead inválido")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Lead removido"})
}
