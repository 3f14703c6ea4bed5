package handlers

import (
	"net/http"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles HTTP requests for messages
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessage handles POST /api/mensagens. The sender is always the
// authenticated user.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req struct {
		RecipientID string  `json:"destinatarioId" binding:"required"`
		CaseID      *string `json:"processoId"`
		Body        string  `json:"conteudo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "destinatarioId inválido")
		return
	}

	user := CurrentUser(c)
	msg := &models.Message{
		SenderID:    user.ID,
		RecipientID: recipientID,
		Body:        req.Body,
	}
	if req.CaseID != nil {
		caseID, err := uuid.Parse(*req.CaseID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "processoId inválido")
			return
		}
		msg.CaseID = &caseID
	}

	sent, err := h.messageService.SendMessage(c.Request.Context(), msg)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, sent)
}

// GetConversation handles GET /api/mensagens/:usuarioId
func (h *MessageHandler) GetConversation(c *gin.Context) {
	otherID, err := uuid.Parse(c.Param("usuarioId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de usuário inválido")
		return
	}

	user := CurrentUser(c)
	msgs, err := h.messageService.GetConversation(c.Request.Context(), user.ID, otherID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, msgs)
}

// UnreadCount handles GET /api/mensagens/nao-lidas
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	user := CurrentUser(c)
	count, err := h.messageService.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"naoLidas": count})
}
