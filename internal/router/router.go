package router

import (
	"github.com/gin-gonic/gin"

	"invopo/internal/config"
	"invopo/internal/handler"
	"invopo/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	documentH *handler.DocumentHandler,
	comparisonH *handler.ComparisonHandler,
	debugH *handler.DebugHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Session())

	// Document upload + extraction per role
	v1.POST("/documents/:role", documentH.Upload)

	// Comparison
	v1.POST("/compare", comparisonH.Compare)
	v1.GET("/compare/download", comparisonH.Download)

	// Read-only workflow introspection
	v1.GET("/debug", debugH.Show)

	return r
}
