package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"lexflow-backend/models"
	"lexflow-backend/repository"
	"lexflow-backend/service"
	"lexflow-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles HTTP requests for case document uploads
type FileHandler struct {
	fileRepo         *repository.FileRepository
	caseService      *service.CaseService
	storage          storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileRepo *repository.FileRepository, caseService *service.CaseService, storage storage.Storage) *FileHandler {
	return &FileHandler{
		fileRepo:    fileRepo,
		caseService: caseService,
		storage:     storage,
		maxFileSize: 10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"application/pdf":    true,
			"text/plain":         true,
			"image/jpeg":         true,
			"image/png":          true,
			"application/msword": true, // .doc
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true, // .docx
		},
	}
}

var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadFile handles POST /api/arquivos/upload. When processo_id is set
// the file is also registered as an attachment on the case record, which
// makes it visible to the document checklist.
func (h *FileHandler) UploadFile(c *gin.Context) {
	user := CurrentUser(c)

	var caseID *uuid.UUID
	if raw := c.PostForm("processo_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "processo_id inválido")
			return
		}
		caseID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "Arquivo é obrigatório")
		return
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("Arquivo excede o limite de %d bytes", h.maxFileSize))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if inferred, ok := mimeByExtension[ext]; ok {
			mimeType = inferred
		} else {
			mimeType = "application/octet-stream"
		}
	}
	if !h.allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "text/") {
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE",
			"Tipo de arquivo não permitido. Tipos aceitos: PDF, TXT, JPG, PNG, DOC, DOCX")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return
	}
	defer file.Close()

	fileID := uuid.New()
	storagePath, err := h.storage.Upload(c.Request.Context(), fileID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED",
			fmt.Sprintf("Falha no upload do arquivo: %v", err))
		return
	}

	record := &models.File{
		ID:          fileID,
		UserID:      user.ID,
		CaseID:      caseID,
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}
	if err := h.fileRepo.Create(c.Request.Context(), record); err != nil {
		h.storage.Delete(c.Request.Context(), storagePath)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR",
			fmt.Sprintf("Falha ao registrar arquivo: %v", err))
		return
	}

	if caseID != nil {
		_, err := h.caseService.AddAttachment(c.Request.Context(), service.AddAttachmentRequest{
			CaseID: *caseID,
			User:   user,
			Attachment: models.CaseAttachment{
				Name: fileHeader.Filename,
				Type: mimeType,
				URL:  "/api/arquivos/" + fileID.String(),
			},
		})
		if err != nil {
			h.storage.Delete(c.Request.Context(), storagePath)
			h.fileRepo.Delete(c.Request.Context(), fileID)
			respondServiceError(c, err)
			return
		}
	}

	respondOK(c, http.StatusCreated, gin.H{
		"id":         record.ID,
		"filename":   record.Filename,
		"mime_type":  record.MimeType,
		"size":       record.Size,
		"created_at": record.CreatedAt,
	})
}

// GetFile handles GET /api/arquivos/:id
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de arquivo inválido")
		return
	}

	file, err := h.fileRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Arquivo não encontrado")
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), file.StoragePath)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED",
			fmt.Sprintf("Falha ao baixar arquivo: %v", err))
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
}

// ListCaseFiles handles GET /api/arquivos/processo/:processoId
func (h *FileHandler) ListCaseFiles(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("processoId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "ID de processo inválido")
		return
	}

	if _, err := h.caseService.GetCase(c.Request.Context(), service.GetCaseRequest{
		ID:   caseID,
		User: CurrentUser(c),
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	files, err := h.fileRepo.ListByCaseID(c.Request.Context(), caseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, files)
}
