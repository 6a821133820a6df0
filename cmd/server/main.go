package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"invopo/internal/config"
	"invopo/internal/docintel/azure"
	"invopo/internal/extract"
	"invopo/internal/handler"
	"invopo/internal/llm/azureopenai"
	"invopo/internal/prompts/pezzo"
	"invopo/internal/router"
	"invopo/internal/scratch"
	"invopo/internal/service"
	"invopo/internal/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Secrets may come from a local .env file; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Missing vision credentials block all functionality up front.
	// Prompt-service and LLM secrets are only checked when a comparison
	// is requested.
	if err := cfg.Vision.Validate(); err != nil {
		return fmt.Errorf("startup check failed: %w", err)
	}

	// Initialize scratch storage
	scratchStore, err := scratch.NewStore(cfg.Upload.ScratchDir)
	if err != nil {
		return fmt.Errorf("failed to initialize scratch storage: %w", err)
	}

	// Initialize external collaborators
	docIntel := azure.NewClient(&cfg.Vision)
	prompts := pezzo.NewClient(&cfg.Pezzo)
	llm := azureopenai.NewClient(&cfg.LLM)

	// Initialize extraction and session state
	extractor := extract.New(docIntel)
	sessions := session.NewMemoryStore()

	// Initialize services
	docSvc := service.NewDocumentService(scratchStore, extractor, &cfg.Upload)
	compSvc := service.NewComparisonService(extractor, prompts, llm, &cfg.Pezzo)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(sessions, docSvc)
	comparisonH := handler.NewComparisonHandler(sessions, compSvc)
	debugH := handler.NewDebugHandler(sessions)
	healthH := handler.NewHealthHandler(scratchStore)

	// Setup router
	r := router.Setup(cfg, documentH, comparisonH, debugH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
