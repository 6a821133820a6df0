package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invopo/internal/domain"
	"invopo/internal/middleware"
	"invopo/internal/port"
	"invopo/internal/service"
)

// ComparisonFilename is the fixed download filename for comparison results.
const ComparisonFilename = "invoice_po_comparison.md"

// ComparisonHandler handles comparison generation and download endpoints.
type ComparisonHandler struct {
	sessions    port.SessionStore
	compService service.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(sessions port.SessionStore, compService service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{sessions: sessions, compService: compService}
}

// Compare handles POST /api/v1/compare
// @Summary Compare invoice and purchase order
// @Description Generate a natural-language comparison of the uploaded invoice and purchase order
// @Tags compare
// @Produce json
// @Success 200 {object} APIResponse "Comparison text"
// @Failure 409 {object} APIResponse "Both documents not uploaded or content unavailable"
// @Router /compare [post]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	sessID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "NO_SESSION", "missing session context")
		return
	}
	sess := h.sessions.GetOrCreate(sessID)

	// Comparison is only enabled once both roles have a stored file;
	// missing content is recomputed lazily by the service.
	if !sess.CanCompare() {
		RespondError(c, http.StatusConflict, "COMPARE_NOT_READY",
			"upload both invoice and purchase order to enable comparison")
		return
	}

	result, err := h.compService.Compare(c.Request.Context(), sess)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"comparison":   result,
		"download_url": "/api/v1/compare/download",
	})
}

// Download handles GET /api/v1/compare/download
// @Summary Download the comparison result
// @Description Download the last generated comparison as a markdown file
// @Tags compare
// @Produce text/markdown
// @Success 200 {string} string "Markdown comparison"
// @Failure 404 {object} APIResponse "No comparison generated yet"
// @Router /compare/download [get]
func (h *ComparisonHandler) Download(c *gin.Context) {
	sessID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "NO_SESSION", "missing session context")
		return
	}
	sess := h.sessions.GetOrCreate(sessID)

	if sess.Comparison == "" {
		HandleError(c, domain.ErrNoComparison)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ComparisonFilename+`"`)
	c.Data(http.StatusOK, "text/markdown", []byte(sess.Comparison))
}
