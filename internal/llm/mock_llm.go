package llm

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studygen/internal/model"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Keywords(ctx context.Context, text string, n int) ([]string, error) {
	args := m.Called(ctx, text, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) Quiz(ctx context.Context, text string, n int) ([]model.QuizItem, error) {
	args := m.Called(ctx, text, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuizItem), args.Error(1)
}
