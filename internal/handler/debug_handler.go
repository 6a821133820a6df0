package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invopo/internal/domain"
	"invopo/internal/middleware"
	"invopo/internal/port"
)

// DebugHandler exposes read-only workflow state introspection.
type DebugHandler struct {
	sessions port.SessionStore
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(sessions port.SessionStore) *DebugHandler {
	return &DebugHandler{sessions: sessions}
}

// Show handles GET /api/v1/debug
// @Summary Show workflow debug info
// @Description Per-role file path, content presence, and phase; mutates nothing
// @Tags debug
// @Produce json
// @Success 200 {object} APIResponse "Debug info"
// @Router /debug [get]
func (h *DebugHandler) Show(c *gin.Context) {
	sessID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "NO_SESSION", "missing session context")
		return
	}
	sess := h.sessions.GetOrCreate(sessID)

	roles := gin.H{}
	for _, role := range domain.Roles {
		slot := sess.Slot(role)
		info := gin.H{
			"phase":           slot.Phase(),
			"content_present": slot.Content != nil,
		}
		if slot.File != nil {
			info["path"] = slot.File.Path
			info["original_name"] = slot.File.OriginalName
		}
		roles[string(role)] = info
	}

	RespondOK(c, gin.H{
		"session_id":         sess.ID,
		"roles":              roles,
		"comparison_present": sess.Comparison != "",
	})
}
