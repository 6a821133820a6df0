package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invopo/internal/domain"
)

// MockContentExtractor is a mock implementation of port.ContentExtractor.
type MockContentExtractor struct {
	mock.Mock
}

func (m *MockContentExtractor) Extract(ctx context.Context, filePath string) (*domain.ExtractedContent, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedContent), args.Error(1)
}
