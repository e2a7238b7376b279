package textutil

import (
	"strings"
	"unicode"
)

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Tokens lowercases the text and splits it on anything that is not a letter
// or digit, dropping tokens shorter than two runes.
func Tokens(s string) []string {
	split := func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}

	fields := strings.FieldsFunc(strings.ToLower(s), split)
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// CollapseSpace normalizes all runs of whitespace to single spaces.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
