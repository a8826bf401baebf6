package summarizer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider using testify/mock.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
