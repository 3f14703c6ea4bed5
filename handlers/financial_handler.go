package handlers

import (
	"net/http"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinancialHandler handles HTTP requests for invoices
type FinancialHandler struct {
	financialService *service.FinancialService
}

// NewFinancialHandler creates a new financial handler
func NewFinancialHandler(financialService *service.FinancialService) *FinancialHandler {
	return &FinancialHandler{financialService: financialService}
}

// CreateInvoice handles POST /api/financeiro
func (h *FinancialHandler) CreateInvoice(c *gin.Context) {
	var body models.Invoice
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	inv, err := h.financialService.CreateInvoice(c.Request.Context(), &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, inv)
}

// GetInvoice handles GET /api/financeiro/:id
func (h *FinancialHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de cobrança inválido")
		return
	}

	inv, err := h.financialService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, inv)
}

// MarkPaid handles POST /api/financeiro/:id/pagar
func (h *FinancialHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de cobrança inválido")
		return
	}

	if err := h.financialService.MarkInvoicePaid(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Cobrança marcada como paga"})
}

// ListClientInvoices handles GET /api/financeiro/cliente/:clienteId
func (h *FinancialHandler) ListClientInvoices(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de cliente inválido")
		return
	}

	var status *models.InvoiceStatus
	if q := c.Query("status"); q != "" {
		s := models.InvoiceStatus(q)
		status = &s
	}

	invoices, err := h.financialService.ListClientInvoices(c.Request.Context(), clientID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, invoices)
}

// DeleteInvoice handles DELETE /api/financeiro/:id
func (h *FinancialHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de cobrança inválido")
		return
	}

	if err := h.financialService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Cobrança removida"})
}
