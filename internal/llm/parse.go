package llm

import (
	"fmt"
	"strings"

	"studygen/internal/fault"
	"studygen/internal/model"
)

// ParseKeywords splits a model response into discrete keywords. The
// prompt asks for a comma-separated list, but models do not reliably
// follow the instruction, so line breaks and semicolons are tolerated:
// the response is split on the first delimiter found, probing newline
// before comma so keywords containing commas survive a line-per-keyword
// response. List numbering and bullets are stripped.
func ParseKeywords(raw string) ([]string, error) {
	out := strings.TrimSpace(raw)
	if out == "" {
		return nil, fmt.Errorf("empty response: %w", fault.ErrParse)
	}

	var parts []string
	for _, sep := range []string{"\n", ",", ";"} {
		if strings.Contains(out, sep) {
			parts = strings.Split(out, sep)
			break
		}
	}
	if parts == nil {
		parts = []string{out}
	}

	var keywords []string
	for _, p := range parts {
		if k := cleanKeyword(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords in response: %w", fault.ErrParse)
	}
	return keywords, nil
}

func cleanKeyword(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*• \t")
	s = stripNumbering(s)
	return strings.Trim(s, `"'`)
}

// stripNumbering removes a leading "1." / "12)" list marker.
func stripNumbering(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// ParseQuiz decomposes a model response into quiz items. The expected
// layout per question is a question line, options "A)".."D)", and an
// "Answer: X" marker. A block that does not yield exactly 4 options and
// one answer in range is counted in skipped and excluded from the
// result. ParseError is returned only when no block survives.
func ParseQuiz(raw string) ([]model.QuizItem, int, error) {
	var (
		items    []model.QuizItem
		skipped  int
		cur      *model.QuizItem
		overflow bool
	)

	flush := func() {
		if cur == nil {
			return
		}
		if !overflow && len(cur.Options) == 4 && cur.Answer >= 0 && cur.Answer < 4 {
			items = append(items, *cur)
		} else {
			skipped++
		}
		cur = nil
		overflow = false
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case optionIndex(line) >= 0:
			if cur == nil {
				continue
			}
			if len(cur.Options) >= 4 {
				overflow = true
				continue
			}
			cur.Options = append(cur.Options, optionText(line))
		case isAnswerLine(line):
			if cur != nil {
				cur.Answer = answerIndex(line)
			}
		default:
			flush()
			cur = &model.QuizItem{Question: stripNumbering(line), Answer: -1}
		}
	}
	flush()

	if len(items) == 0 {
		return nil, skipped, fmt.Errorf("no quiz questions in response: %w", fault.ErrParse)
	}
	return items, skipped, nil
}

// optionIndex returns 0..3 for lines shaped like "A) text", -1 otherwise.
func optionIndex(line string) int {
	if len(line) < 2 || line[1] != ')' {
		return -1
	}
	if line[0] < 'A' || line[0] > 'D' {
		return -1
	}
	return int(line[0] - 'A')
}

func optionText(line string) string {
	return strings.TrimSpace(line[2:])
}

func isAnswerLine(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), "answer")
}

// answerIndex extracts the marked option from a line like "Answer: B".
func answerIndex(line string) int {
	_, after, found := strings.Cut(line, ":")
	if !found {
		return -1
	}
	after = strings.TrimSpace(after)
	if after == "" {
		return -1
	}
	letter := after[0]
	if letter >= 'a' && letter <= 'd' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'D' {
		return -1
	}
	return int(letter - 'A')
}
