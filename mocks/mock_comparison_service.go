package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invopo/internal/domain"
)

// MockComparisonService is a mock implementation of service.ComparisonService.
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, sess *domain.Session) (string, error) {
	args := m.Called(ctx, sess)
	return args.String(0), args.Error(1)
}
