package handlers

import (
	"errors"
	"net/http"

	"lexflow-backend/analysis"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
)

// respondOK writes the success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps service sentinels onto the HTTP taxonomy:
// not-found 404, access denial 403, validation gaps 400, anything else
// 500. Soft analysis findings never reach this path; they are data.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCaseNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Processo não encontrado")
	case errors.Is(err, service.ErrLeadNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Lead não encontrado")
	case errors.Is(err, service.ErrClientNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Cliente não encontrado")
	case errors.Is(err, service.ErrAppointmentNotFound),
		errors.Is(err, service.ErrInvoiceNotFound),
		errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "FORBIDDEN", "Acesso negado")
	case errors.Is(err, analysis.ErrRulingTextMissing),
		errors.Is(err, analysis.ErrCaseNotArchived),
		errors.Is(err, service.ErrInvalidTimeWindow),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrEmptyMessage):
		respondError(c, http.StatusBadRequest, "VALIDATION_GAP", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
