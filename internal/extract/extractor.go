package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"invopo/internal/domain"
	"invopo/internal/port"
)

// extractFunc is the per-format extraction strategy.
type extractFunc func(ctx context.Context, path string) (*domain.ExtractedContent, error)

// Extractor converts a materialized file into extracted content. It
// dispatches purely on the file extension: PDF goes through the
// document intelligence service, CSV is parsed locally. Any other
// extension fails before any file I/O.
type Extractor struct {
	docIntel   port.DocumentIntelligence
	strategies map[domain.DocumentFormat]extractFunc
}

// New creates an Extractor backed by the given document intelligence service.
func New(docIntel port.DocumentIntelligence) *Extractor {
	e := &Extractor{docIntel: docIntel}
	e.strategies = map[domain.DocumentFormat]extractFunc{
		domain.FormatPDF: e.extractPDF,
		domain.FormatCSV: extractCSV,
	}
	return e
}

// Extract produces the (text, tables) pair for the file at path. The
// result is never partially populated: extraction either fully
// succeeds or fully fails.
func (e *Extractor) Extract(ctx context.Context, path string) (*domain.ExtractedContent, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	format, ok := domain.SupportedExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedFormat, ext)
	}
	return e.strategies[format](ctx, path)
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (*domain.ExtractedContent, error) {
	result, err := e.docIntel.Analyze(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	return &domain.ExtractedContent{
		Text:   result.Text,
		Tables: result.Tables,
	}, nil
}
