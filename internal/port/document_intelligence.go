package port

import (
	"context"

	"invopo/internal/domain"
)

// AnalysisResult is the (text, tables) pair returned by the document
// intelligence service. Never partially populated: analysis either
// fully succeeds or fails.
type AnalysisResult struct {
	Text   string
	Tables []domain.Table
}

// DocumentIntelligence abstracts the cloud document-understanding
// service used for PDF extraction. OCR and layout internals are opaque.
type DocumentIntelligence interface {
	Analyze(ctx context.Context, filePath string) (*AnalysisResult, error)
}
