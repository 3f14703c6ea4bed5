package handlers

import (
	"net/http"
	"time"

	"lexflow-backend/models"
	"lexflow-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgendaHandler handles HTTP requests for appointments
type AgendaHandler struct {
	agendaService *service.AgendaService
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(agendaService *service.AgendaService) *AgendaHandler {
	return &AgendaHandler{agendaService: agendaService}
}

// CreateAppointment handles POST /api/agenda
func (h *AgendaHandler) CreateAppointment(c *gin.Context) {
	var body models.Appointment
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	appt, err := h.agendaService.CreateAppointment(c.Request.Context(), &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, appt)
}

// GetAppointment handles GET /api/agenda/:id
func (h *AgendaHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de compromisso inválido")
		return
	}

	appt, err := h.agendaService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, appt)
}

// UpdateAppointment handles PUT /api/agenda/:id
func (h *AgendaHandler) UpdateAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de compromisso inválido")
		return
	}

	var body models.Appointment
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	body.ID = id

	appt, err := h.agendaService.UpdateAppointment(c.Request.Context(), &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, appt)
}

// ListWeek handles GET /api/agenda/semana. Defaults to the authenticated
// lawyer's current week; admins can pass advogadoId and dia.
func (h *AgendaHandler) ListWeek(c *gin.Context) {
	user := CurrentUser(c)

	lawyerID := uuid.Nil
	if user != nil {
		lawyerID = user.ID
	}
	if q := c.Query("advogadoId"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "advogadoId inválido")
			return
		}
		lawyerID = id
	}

	day := time.Now()
	if q := c.Query("dia"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "dia deve estar no formato AAAA-MM-DD")
			return
		}
		day = parsed
	}

	appts, err := h.agendaService.ListWeek(c.Request.Context(), lawyerID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, appts)
}

// DeleteAppointment handles DELETE /api/agenda/:id
func (h *AgendaHandler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de compromisso inválido")
		return
	}

	if err := h.agendaService.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Compromisso removido"})
}
