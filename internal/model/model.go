// Package model holds the value types passed between pipeline stages.
package model

// QuizItem is a single multiple-choice question: exactly four options
// and the index of the correct one.
type QuizItem struct {
	Question string
	Options  []string
	Answer   int
}

// Bundle collects the artifacts produced by one run. The Has flags mark
// which stages succeeded, so a partial run writes only what it produced.
type Bundle struct {
	Summary  string
	Keywords []string
	Quiz     []QuizItem

	HasSummary  bool
	HasKeywords bool
	HasQuiz     bool
}

// Empty reports whether the bundle holds no artifact at all.
func (b Bundle) Empty() bool {
	return !b.HasSummary && !b.HasKeywords && !b.HasQuiz
}
