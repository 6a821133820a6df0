package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPromptRenderer is a mock implementation of port.PromptRenderer.
type MockPromptRenderer struct {
	mock.Mock
}

func (m *MockPromptRenderer) GetPrompt(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
