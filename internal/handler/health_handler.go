package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"invopo/internal/scratch"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	scratch *scratch.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(scratchStore *scratch.Store) *HealthHandler {
	return &HealthHandler{scratch: scratchStore}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	probe, err := os.CreateTemp(h.scratch.Dir(), ".readyz-*")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "scratch storage not writable"})
		return
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
