package summarizer

import "context"

// Provider produces a condensed version of the input text. Implemented
// by the Hugging Face Inference API client and by test doubles.
type Provider interface {
	Summarize(ctx context.Context, text string) (string, error)
}
