package service

import (
	"context"
	"log"

	"invopo/internal/config"
	"invopo/internal/domain"
	"invopo/internal/port"
	"invopo/internal/scratch"
)

// UploadInput is the DTO for document upload requests.
type UploadInput struct {
	Role     domain.DocumentRole
	Data     []byte
	Filename string
}

// DocumentService defines the upload-and-extract contract.
type DocumentService interface {
	UploadAndExtract(ctx context.Context, sess *domain.Session, input UploadInput) (*domain.ExtractedContent, error)
}

type documentService struct {
	scratch   *scratch.Store
	extractor port.ContentExtractor
	cfg       *config.UploadConfig
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	scratchStore *scratch.Store,
	extractor port.ContentExtractor,
	cfg *config.UploadConfig,
) DocumentService {
	return &documentService{
		scratch:   scratchStore,
		extractor: extractor,
		cfg:       cfg,
	}
}

// UploadAndExtract materializes the uploaded blob and runs extraction
// for the given role. The file is materialized unconditionally, before
// the format check, so the temp file handle is stored even when the
// format is unsupported or extraction fails; extracted content is only
// stored on success. Repeating the action re-runs it from scratch and
// allocates a fresh scratch file.
func (s *documentService) UploadAndExtract(ctx context.Context, sess *domain.Session, input UploadInput) (*domain.ExtractedContent, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	tf, err := s.scratch.Materialize(input.Data, input.Filename)
	if err != nil {
		log.Printf("documentService.UploadAndExtract: materializing %s failed: %v", input.Filename, err)
		return nil, err
	}

	// Storing the handle resets any previously extracted content for the role.
	sess.StoreFile(input.Role, tf)

	log.Printf("documentService.UploadAndExtract: processing %s: %s", input.Role, input.Filename)

	content, err := s.extractor.Extract(ctx, tf.Path)
	if err != nil {
		log.Printf("documentService.UploadAndExtract: %s extraction failed for %s: %v",
			input.Role, input.Filename, err)
		return nil, err
	}

	sess.StoreContent(input.Role, content)
	return content, nil
}
