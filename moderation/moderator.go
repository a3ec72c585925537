// Package moderation censors forbidden words in message content before
// it is persisted and fanned out.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton over a normalized copy
// of the word list: lowercased, with punctuation, spacing and symbols
// stripped, so "b.a-d" still matches "bad".
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, len(words))
	for i, word := range words {
		normalized, _ := normalize([]rune(word))
		patterns[i] = normalized
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, replacement: replacement}, nil
}

// Censor replaces every character of each matched word with the
// replacement rune, preserving the original spacing around it.
func (m *Moderator) Censor(content string) string {
	original := []rune(content)
	normalized, sourceIdx := normalize(original)
	if len(normalized) == 0 {
		return content
	}

	spans := m.machine.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return content
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(sourceIdx) {
			continue
		}
		for i := sourceIdx[start]; i <= sourceIdx[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original)
}

// normalize lowercases and drops noise runes, returning for each kept
// rune its index in the source slice.
func normalize(source []rune) ([]rune, []int) {
	normalized := make([]rune, 0, len(source))
	sourceIdx := make([]int, 0, len(source))
	for i, r := range source {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(r))
		sourceIdx = append(sourceIdx, i)
	}
	return normalized, sourceIdx
}
