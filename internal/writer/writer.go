// Package writer serializes produced artifacts into the output
// directory as plain text files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studygen/internal/fault"
	"studygen/internal/model"
)

const (
	SummaryFile  = "summary.txt"
	KeywordsFile = "keywords.txt"
	QuizFile     = "quiz.txt"
)

// Write creates dir if missing (idempotent) and writes one file per
// artifact the bundle marks as present, overwriting any previous run.
// It returns the paths written.
func Write(dir string, b model.Bundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w: %w", dir, fault.ErrFileAccess, err)
	}

	var written []string
	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w: %w", path, fault.ErrFileAccess, err)
		}
		written = append(written, path)
		return nil
	}

	if b.HasSummary {
		if err := write(SummaryFile, b.Summary); err != nil {
			return written, err
		}
	}
	if b.HasKeywords {
		if err := write(KeywordsFile, FormatKeywords(b.Keywords)); err != nil {
			return written, err
		}
	}
	if b.HasQuiz {
		if err := write(QuizFile, FormatQuiz(b.Quiz)); err != nil {
			return written, err
		}
	}
	return written, nil
}

// FormatKeywords renders the keyword list as a single comma-separated
// line.
func FormatKeywords(keywords []string) string {
	return strings.Join(keywords, ", ") + "\n"
}

// FormatQuiz renders quiz items as numbered blocks with indented
// options and an answer marker:
//
//	1) Question?
//	   A) ...
//	   B) ...
//	   C) ...
//	   D) ...
//	Answer: B
func FormatQuiz(items []model.QuizItem) string {
	var sb strings.Builder
	for i, q := range items {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&sb, "   %c) %s\n", 'A'+rune(j), opt)
		}
		letter := "?"
		if q.Answer >= 0 && q.Answer < len(q.Options) {
			letter = string(rune('A' + q.Answer))
		}
		fmt.Fprintf(&sb, "Answer: %s\n\n", letter)
	}
	return sb.String()
}
