package tutor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WordPair is one vocabulary item produced by the backend.
type WordPair struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

// ParseWordPair extracts a word pair from a backend reply. The primary
// format is the JSON object the prompt asks for; models that ignore the
// instruction tend to fall back to a parenthesized "(term, translation)"
// literal, so that form is accepted too.
func ParseWordPair(text string) (*WordPair, error) {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "{") {
		var pair WordPair
		if err := json.Unmarshal([]byte(s), &pair); err != nil {
			return nil, fmt.Errorf("parsing word pair: %w", err)
		}
		pair.Term = strings.TrimSpace(pair.Term)
		pair.Translation = strings.TrimSpace(pair.Translation)
		if pair.Term == "" || pair.Translation == "" {
			return nil, fmt.Errorf("word pair missing term or translation: %q", s)
		}
		return &pair, nil
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := s[1 : len(s)-1]
		term, translation, found := strings.Cut(inner, ",")
		if !found {
			return nil, fmt.Errorf("word pair has no separator: %q", s)
		}
		pair := &WordPair{
			Term:        strings.TrimSpace(term),
			Translation: strings.TrimSpace(translation),
		}
		if pair.Term == "" || pair.Translation == "" {
			return nil, fmt.Errorf("word pair missing term or translation: %q", s)
		}
		return pair, nil
	}

	return nil, fmt.Errorf("unrecognized word pair format: %q", s)
}
