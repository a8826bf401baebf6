package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"studygen/internal/fault"
	"studygen/internal/model"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model   openai.ChatModel
	client  *openai.Client
	timeout time.Duration
	log     *slog.Logger
}

const (
	defaultChatTimeout = 60 * time.Second

	// Keyword extraction wants deterministic output; quiz generation
	// benefits from variety.
	keywordTemperature = 0.2
	quizTemperature    = 0.7

	keywordMaxTokens = 300
	quizMaxTokens    = 1200

	// Prompt payload caps, matching what the chat models accept
	// comfortably for this workload.
	keywordInputLimit = 4000
	quizInputLimit    = 6000
)

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, chatModel openai.ChatModel, timeout time.Duration, log *slog.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required: %w", fault.ErrAuth)
	}
	if chatModel == "" {
		chatModel = openai.ChatModelGPT4oMini
	}
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:   chatModel,
		client:  &cli,
		timeout: timeout,
		log:     log,
	}, nil
}

// Keywords asks the model for a comma-separated keyword list and parses
// it into discrete keywords, capped at n.
func (c *OpenAIClient) Keywords(ctx context.Context, text string, n int) ([]string, error) {
	content, err := c.complete(ctx,
		"You are an assistant that extracts the most important keywords from text.",
		keywordPrompt(text, n),
		keywordTemperature, keywordMaxTokens,
	)
	if err != nil {
		return nil, err
	}
	keywords, err := ParseKeywords(content)
	if err != nil {
		return nil, err
	}
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords, nil
}

// Quiz asks the model for n multiple-choice questions and parses the
// response. Malformed question blocks are skipped with a warning; only
// a response with no usable question at all is an error.
func (c *OpenAIClient) Quiz(ctx context.Context, text string, n int) ([]model.QuizItem, error) {
	content, err := c.complete(ctx,
		"You are an expert assistant that writes multiple-choice questions and marks the correct answer.",
		quizPrompt(text, n),
		quizTemperature, quizMaxTokens,
	)
	if err != nil {
		return nil, err
	}
	items, skipped, err := ParseQuiz(content)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		c.log.Warn("skipped malformed quiz blocks", "skipped", skipped, "kept", len(items))
	}
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", mapAPIError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned: %w", fault.ErrService)
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// mapAPIError folds SDK errors into the pipeline error taxonomy.
func mapAPIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("api key rejected: %w: %v", fault.ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("provider throttled the request: %w: %v", fault.ErrRateLimit, err)
		}
		return fmt.Errorf("openai request failed: %w: %v", fault.ErrService, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request exceeded bound: %w: %v", fault.ErrTimeout, err)
	}
	return fmt.Errorf("openai request failed: %w: %v", fault.ErrService, err)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

func keywordPrompt(text string, n int) string {
	return fmt.Sprintf(
		"Extract %d keywords from the text below. "+
			"Return only the requested keywords as a comma-separated list, short and concise.\n\n"+
			"Text:\n%s\n\nResult:",
		n, truncate(text, keywordInputLimit),
	)
}

func quizPrompt(text string, n int) string {
	return fmt.Sprintf(
		"Generate %d quiz questions about the text below. "+
			"Each question must have 4 answer options (A, B, C, D). "+
			"Mark the correct answer with a line like 'Answer: B'.\n\n"+
			"Text:\n%s\n\n"+
			"Format:\n1) Question?\nA) ...\nB) ...\nC) ...\nD) ...\nAnswer: X\n\nBegin:",
		n, truncate(text, quizInputLimit),
	)
}
