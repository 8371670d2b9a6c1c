package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for search normalization
var nonTokenRegex = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSpaces collapses runs of whitespace to a single space and trims the result.
// Unicode spaces such as NBSP count as whitespace.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits search text into lowercase alphanumeric tokens.
// Every run of characters outside [a-z0-9] (after lowercasing) acts as a separator,
// so tokenizing already tokenized text yields the same tokens.
func Tokenize(s string) []string {
	cleaned := nonTokenRegex.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Fields(cleaned)
}

// TokenSet returns the distinct tokens of s
func TokenSet(s string) map[string]struct{} {
	tokens := Tokenize(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
