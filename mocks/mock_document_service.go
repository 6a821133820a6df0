package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invopo/internal/domain"
	"invopo/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) UploadAndExtract(ctx context.Context, sess *domain.Session, input service.UploadInput) (*domain.ExtractedContent, error) {
	args := m.Called(ctx, sess, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedContent), args.Error(1)
}
