// Package extract recovers a single JSON value from free-form LLM output.
//
// Models regularly wrap JSON in markdown code fences or surround it with
// prose ("sure! here is the JSON: ..."). The extractor strips fences, tries
// a direct parse, and falls back to the widest {...} or [...] span, with
// the object span preferred. The span search is greedy: text whose strings
// contain unescaped braces can over-match. That is a known limitation of
// the heuristic, kept because downstream consumers depend on its behavior
// for mixed prose/JSON responses.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when no parseable JSON value can be recovered.
var ErrNoJSON = errors.New("no parseable JSON in text")

// JSON recovers a single JSON value from raw model output.
func JSON(text string) (any, error) {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimSpace(stripFence(t))
	}

	var v any
	if err := json.Unmarshal([]byte(t), &v); err == nil {
		return v, nil
	}

	candidate := widestSpan(t, "{", "}")
	if candidate == "" {
		candidate = widestSpan(t, "[", "]")
	}
	if candidate == "" {
		return nil, ErrNoJSON
	}
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return v, nil
}

// stripFence drops the opening fence line (with its optional language tag)
// and everything from the last fence marker onward. If the markers do not
// bracket an interior, the text is returned unchanged.
func stripFence(t string) string {
	firstNL := strings.Index(t, "\n")
	lastFence := strings.LastIndex(t, "```")
	if firstNL == -1 || lastFence <= firstNL {
		return t
	}
	return t[firstNL+1 : lastFence]
}

// widestSpan returns the greedy span from the first open marker to the last
// close marker, or "" when no such span exists.
func widestSpan(t, open, close string) string {
	start := strings.Index(t, open)
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(t, close)
	if end <= start {
		return ""
	}
	return t[start : end+1]
}
