package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studygen/internal/fault"
	"studygen/internal/model"
)

func TestParseKeywordsCommaSeparated(t *testing.T) {
	keywords, err := ParseKeywords("go, concurrency, channels, goroutines")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "concurrency", "channels", "goroutines"}, keywords)
}

func TestParseKeywordsLineSeparated(t *testing.T) {
	raw := "1. distributed systems\n2. consensus\n3. replication"
	keywords, err := ParseKeywords(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"distributed systems", "consensus", "replication"}, keywords)
}

func TestParseKeywordsBullets(t *testing.T) {
	raw := "- networking\n- latency\n* throughput"
	keywords, err := ParseKeywords(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"networking", "latency", "throughput"}, keywords)
}

func TestParseKeywordsSemicolons(t *testing.T) {
	keywords, err := ParseKeywords("alpha; beta; gamma")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, keywords)
}

func TestParseKeywordsSingleWord(t *testing.T) {
	keywords, err := ParseKeywords("  encryption  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"encryption"}, keywords)
}

func TestParseKeywordsQuoted(t *testing.T) {
	keywords, err := ParseKeywords(`"api", "sdk"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "sdk"}, keywords)
}

func TestParseKeywordsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   \n  ", ",,,"} {
		_, err := ParseKeywords(raw)
		assert.ErrorIs(t, err, fault.ErrParse, "raw=%q", raw)
	}
}

const wellFormedQuiz = `1) What color is the fox?
A) Brown
B) Black
C) White
D) Green
Answer: A

2) What does the fox jump over?
A) A fence
B) The lazy dog
C) A river
D) The moon
Answer: B`

func TestParseQuizWellFormed(t *testing.T) {
	items, skipped, err := ParseQuiz(wellFormedQuiz)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, items, 2)

	assert.Equal(t, model.QuizItem{
		Question: "What color is the fox?",
		Options:  []string{"Brown", "Black", "White", "Green"},
		Answer:   0,
	}, items[0])
	assert.Equal(t, "What does the fox jump over?", items[1].Question)
	assert.Equal(t, 1, items[1].Answer)
}

func TestParseQuizSkipsMissingOption(t *testing.T) {
	raw := `1) Broken question?
A) One
B) Two
C) Three
Answer: A

2) Whole question?
A) One
B) Two
C) Three
D) Four
Answer: D`

	items, skipped, err := ParseQuiz(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, items, 1)
	assert.Equal(t, "Whole question?", items[0].Question)
	assert.Equal(t, 3, items[0].Answer)
}

func TestParseQuizSkipsMissingAnswer(t *testing.T) {
	raw := `1) No answer marker?
A) One
B) Two
C) Three
D) Four`

	_, skipped, err := ParseQuiz(raw)
	assert.ErrorIs(t, err, fault.ErrParse)
	assert.Equal(t, 1, skipped)
}

func TestParseQuizSkipsExtraOptions(t *testing.T) {
	raw := `1) Too many options?
A) One
B) Two
C) Three
D) Four
D) Five
Answer: A

2) Fine question?
A) One
B) Two
C) Three
D) Four
Answer: C`

	items, skipped, err := ParseQuiz(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, items, 1)
	assert.Equal(t, "Fine question?", items[0].Question)
}

func TestParseQuizLowercaseAnswer(t *testing.T) {
	raw := `1) Lowercase marker?
A) One
B) Two
C) Three
D) Four
answer: c`

	items, skipped, err := ParseQuiz(raw)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Answer)
}

func TestParseQuizNothingUsable(t *testing.T) {
	_, _, err := ParseQuiz("The model apologizes and refuses to answer.")
	assert.ErrorIs(t, err, fault.ErrParse)
}
