package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invopo/internal/port"
)

// MockDocumentIntelligence is a mock implementation of port.DocumentIntelligence.
type MockDocumentIntelligence struct {
	mock.Mock
}

func (m *MockDocumentIntelligence) Analyze(ctx context.Context, filePath string) (*port.AnalysisResult, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.AnalysisResult), args.Error(1)
}
