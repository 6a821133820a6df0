package port

import (
	"context"

	"invopo/internal/domain"
)

// ContentExtractor converts a materialized file into extracted content,
// dispatching on the file extension.
type ContentExtractor interface {
	Extract(ctx context.Context, filePath string) (*domain.ExtractedContent, error)
}
