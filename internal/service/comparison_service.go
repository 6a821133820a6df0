package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"invopo/internal/config"
	"invopo/internal/domain"
	"invopo/internal/port"
)

// ComparisonService produces the natural-language comparison between the
// session's invoice and purchase order.
type ComparisonService interface {
	Compare(ctx context.Context, sess *domain.Session) (string, error)
}

type comparisonService struct {
	extractor  port.ContentExtractor
	prompts    port.PromptRenderer
	llm        port.Completer
	promptName string
}

// NewComparisonService creates a new ComparisonService implementation.
func NewComparisonService(
	extractor port.ContentExtractor,
	prompts port.PromptRenderer,
	llm port.Completer,
	cfg *config.PezzoConfig,
) ComparisonService {
	promptName := cfg.PromptName
	if promptName == "" {
		promptName = "PurchaseOrder"
	}
	return &comparisonService{
		extractor:  extractor,
		prompts:    prompts,
		llm:        llm,
		promptName: promptName,
	}
}

// Compare lazily re-extracts any role whose content is absent but whose
// temp file is present, then renders the prompt template and submits the
// combined payload to the language model. Extraction failures during the
// lazy pass are logged and leave the role's content absent; prompt and
// model failures propagate to the caller unwrapped.
func (s *comparisonService) Compare(ctx context.Context, sess *domain.Session) (string, error) {
	for _, role := range domain.Roles {
		slot := sess.Slot(role)
		if slot.Content != nil || slot.File == nil {
			continue
		}
		content, err := s.extractor.Extract(ctx, slot.File.Path)
		if err != nil {
			log.Printf("comparisonService.Compare: %s extraction failed for %s: %v",
				role, filepath.Base(slot.File.Path), err)
			continue
		}
		sess.StoreContent(role, content)
	}

	invoice := sess.Slot(domain.RoleInvoice)
	po := sess.Slot(domain.RolePurchaseOrder)
	if invoice.Content == nil || po.Content == nil {
		return "", domain.ErrContentUnavailable
	}

	template, err := s.prompts.GetPrompt(ctx, s.promptName)
	if err != nil {
		return "", err
	}

	payload := fmt.Sprintf("%s\n\nText: %s,%s",
		template, invoice.Content.Render(), po.Content.Render())

	result, err := s.llm.Complete(ctx, payload)
	if err != nil {
		return "", err
	}

	sess.SetComparison(result)
	return result, nil
}
