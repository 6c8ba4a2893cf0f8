package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const minTokenLength = 2

// foldAccents strips diacritical marks so "café" and "cafe" map to the same
// term. A fresh transformer chain is built per call; the chain carries state
// and is not safe for concurrent reuse.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Tokenize splits text into lower-cased, accent-folded alphanumeric terms.
// Single-character terms are dropped, matching the training tokenization.
func Tokenize(text string) []string {
	folded := strings.ToLower(foldAccents(text))

	var tokens []string
	var current []rune
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, r)
			continue
		}
		if len(current) >= minTokenLength {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}
	if len(current) >= minTokenLength {
		tokens = append(tokens, string(current))
	}

	return tokens
}
