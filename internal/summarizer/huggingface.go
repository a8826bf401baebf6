package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studygen/internal/fault"
	"studygen/internal/retry"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co/models"
	defaultModel   = "sshleifer/distilbart-cnn-12-6"

	// distilbart rejects inputs beyond its context window; keep
	// payloads well under it.
	maxInputChars = 8000

	retryAttempts = 3
)

// HuggingFace calls the Hugging Face Inference API for summarization.
type HuggingFace struct {
	apiKey     string
	model      string
	maxLength  int
	baseURL    string
	httpClient *http.Client

	// retryBase is the backoff base for throttled and model-loading
	// responses; shortened in tests.
	retryBase time.Duration
}

// NewHuggingFace builds a client against the hosted Inference API.
// maxLength is the summary length hint forwarded to the model.
func NewHuggingFace(apiKey, model string, maxLength int, timeout time.Duration) (*HuggingFace, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required: %w", fault.ErrAuth)
	}
	if model == "" {
		model = defaultModel
	}
	if maxLength <= 0 {
		maxLength = 200
	}
	return &HuggingFace{
		apiKey:    apiKey,
		model:     model,
		maxLength: maxLength,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryBase: 2 * time.Second,
	}, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
}

// hfGeneration covers both field names the Inference API uses depending
// on model and version.
type hfGeneration struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

// Summarize sends text to the summarization model and returns the
// condensed version. Throttled (429) and model-loading (503) responses
// are retried a bounded number of times with exponential backoff.
func (h *HuggingFace) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty input provided")
	}
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	body, err := json.Marshal(hfRequest{
		Inputs:     text,
		Parameters: hfParameters{MaxLength: h.maxLength},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var summary string
	err = retry.Do(ctx, retryAttempts, h.retryBase, func() (bool, error) {
		s, retryable, reqErr := h.request(ctx, body)
		summary = s
		return retryable, reqErr
	})
	return summary, err
}

func (h *HuggingFace) request(ctx context.Context, body []byte) (summary string, retryable bool, err error) {
	endpoint := fmt.Sprintf("%s/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
			return "", false, fmt.Errorf("request exceeded bound: %w", fault.ErrTimeout)
		}
		return "", false, fmt.Errorf("failed to send request: %w: %w", fault.ErrService, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", false, fmt.Errorf("api key rejected (status %d): %w", resp.StatusCode, fault.ErrAuth)
	case http.StatusTooManyRequests:
		return "", true, fmt.Errorf("provider throttled the request: %w", fault.ErrRateLimit)
	case http.StatusServiceUnavailable:
		// The Inference API answers 503 while the model is loading.
		return "", true, fmt.Errorf("model is loading (status 503): %w", fault.ErrService)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", false, fmt.Errorf("request failed with status %d: %s: %w", resp.StatusCode, snippet, fault.ErrService)
	}

	var generations []hfGeneration
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w: %w", fault.ErrService, err)
	}
	for _, g := range generations {
		if g.SummaryText != "" {
			return g.SummaryText, false, nil
		}
		if g.GeneratedText != "" {
			return g.GeneratedText, false, nil
		}
	}
	return "", false, fmt.Errorf("no summary in response: %w", fault.ErrService)
}
