package llm

import (
	"context"

	"studygen/internal/model"
)

// Client is a minimal chat-completion interface to allow pluggable
// providers.
type Client interface {
	// Keywords extracts up to n keywords from text.
	Keywords(ctx context.Context, text string, n int) ([]string, error)
	// Quiz generates up to n multiple-choice questions about text.
	Quiz(ctx context.Context, text string, n int) ([]model.QuizItem, error)
}
