package usecase

import (
	"slices"
	"strings"

	"github.com/storefront/backend/internal/domain"
)

// ToggleTag flips a canned tag in or out of the search text.
//
// Adding appends the tag with its original casing and never deduplicates. Removing drops
// every token equal to the lowercased tag in one pass and rejoins the rest with single
// spaces, keeping their order.
func ToggleTag(search, tag string) string {
	tokens := Tokenize(search)
	t := strings.ToLower(tag)

	if slices.Contains(tokens, t) {
		kept := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if token != t {
				kept = append(kept, token)
			}
		}
		return strings.Join(kept, " ")
	}

	return NormalizeSpaces(search + " " + tag)
}

// IsTagActive reports whether the lowercased tag is one of the active tokens
func IsTagActive(activeTokens []string, tag string) bool {
	return slices.Contains(activeTokens, strings.ToLower(tag))
}

// ResetSearch clears the search text
func ResetSearch() string {
	return ""
}

// TagGroupStates renders each group's buttons against the active tokens
func TagGroupStates(groups []domain.TagGroup, activeTokens []string) []domain.TagGroupState {
	states := make([]domain.TagGroupState, 0, len(groups))
	for _, g := range groups {
		tags := make([]domain.TagState, 0, len(g.Tags))
		for _, tag := range g.Tags {
			tags = append(tags, domain.TagState{Tag: tag, Active: IsTagActive(activeTokens, tag)})
		}
		states = append(states, domain.TagGroupState{Label: g.Label, Tags: tags})
	}
	return states
}
