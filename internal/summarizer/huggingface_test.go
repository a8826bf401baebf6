package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studygen/internal/fault"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HuggingFace {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h, err := NewHuggingFace("hf_test", "test-model", 200, 5*time.Second)
	require.NoError(t, err)
	h.baseURL = srv.URL
	h.retryBase = time.Millisecond
	return h
}

func TestSummarizeSuccess(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody hfRequest
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode([]hfGeneration{{SummaryText: "A fox runs."}})
	})

	summary, err := h.Summarize(context.Background(), "The quick brown fox jumps over the lazy dog.")
	require.NoError(t, err)
	assert.Equal(t, "A fox runs.", summary)
	assert.Equal(t, "Bearer hf_test", gotAuth)
	assert.Equal(t, "/test-model", gotPath)
	assert.Equal(t, "The quick brown fox jumps over the lazy dog.", gotBody.Inputs)
	assert.Equal(t, 200, gotBody.Parameters.MaxLength)
}

func TestSummarizeGeneratedTextFallback(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]hfGeneration{{GeneratedText: "A fox runs."}})
	})

	summary, err := h.Summarize(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, "A fox runs.", summary)
}

func TestSummarizeAuthErrorNotRetried(t *testing.T) {
	var calls int32
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := h.Summarize(context.Background(), "some text")
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrAuth)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSummarizeRateLimitRetried(t *testing.T) {
	var calls int32
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]hfGeneration{{SummaryText: "second try"}})
	})

	summary, err := h.Summarize(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, "second try", summary)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSummarizeModelLoadingExhaustsRetries(t *testing.T) {
	var calls int32
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := h.Summarize(context.Background(), "some text")
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrService)
	assert.EqualValues(t, retryAttempts, atomic.LoadInt32(&calls))
}

func TestSummarizeEmptyResponse(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]hfGeneration{})
	})

	_, err := h.Summarize(context.Background(), "some text")
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrService)
}

func TestSummarizeTruncatesLongInput(t *testing.T) {
	var gotBody hfRequest
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode([]hfGeneration{{SummaryText: "ok"}})
	})

	long := make([]byte, maxInputChars+500)
	for i := range long {
		long[i] = 'a'
	}
	_, err := h.Summarize(context.Background(), string(long))
	require.NoError(t, err)
	assert.Len(t, gotBody.Inputs, maxInputChars)
}

func TestNewHuggingFaceRequiresKey(t *testing.T) {
	_, err := NewHuggingFace("", "test-model", 200, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrAuth)
}

func TestSummarizeEmptyInput(t *testing.T) {
	h, err := NewHuggingFace("hf_test", "test-model", 200, time.Minute)
	require.NoError(t, err)

	_, err = h.Summarize(context.Background(), "   ")
	require.Error(t, err)
}
