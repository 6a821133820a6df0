package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"invopo/internal/domain"
	"invopo/internal/middleware"
	"invopo/internal/port"
	"invopo/internal/service"
)

// DocumentHandler handles document upload and extraction endpoints.
type DocumentHandler struct {
	sessions   port.SessionStore
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(sessions port.SessionStore, docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{sessions: sessions, docService: docService}
}

// Upload handles POST /api/v1/documents/:role
// @Summary Upload and extract a document
// @Description Upload an invoice or purchase order (PDF or CSV) and extract its content
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param role path string true "Document role (invoice or purchase_order)"
// @Param file formData file true "File to upload (PDF or CSV)"
// @Success 201 {object} APIResponse "Document extracted"
// @Failure 400 {object} APIResponse "Invalid role, missing file, unsupported format, or malformed CSV"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 502 {object} APIResponse "Extraction service failure (file retained)"
// @Router /documents/{role} [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	sessID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "NO_SESSION", "missing session context")
		return
	}
	sess := h.sessions.GetOrCreate(sessID)

	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	content, err := h.docService.UploadAndExtract(c.Request.Context(), sess, service.UploadInput{
		Role:     role,
		Data:     data,
		Filename: header.Filename,
	})
	if err != nil {
		// The temp file handle may already be stored; the current phase
		// tells the client whether a later compare can retry extraction.
		status, code, msg := MapDomainError(err)
		c.JSON(status, APIResponse{
			Success: false,
			Error:   &APIError{Code: code, Message: msg},
			Data:    gin.H{"role": role, "phase": sess.Slot(role).Phase()},
		})
		return
	}

	RespondCreated(c, gin.H{
		"role":    role,
		"phase":   sess.Slot(role).Phase(),
		"content": content,
	})
}
