package usecase

import (
	"reflect"
	"testing"

	"github.com/storefront/backend/internal/domain"
)

func TestToggleTag(t *testing.T) {
	testCases := []struct {
		name   string
		search string
		tag    string
		want   string
	}{
		{name: "adds tag to empty search", search: "", tag: "Electrician", want: "Electrician"},
		{name: "appends with original casing", search: "electrician", tag: "TX", want: "electrician TX"},
		{name: "normalizes spacing on add", search: "  licensed   ", tag: "OR", want: "licensed OR"},
		{name: "normalizes unicode spacing on add", search: "licensed\u00a0\u00a0electrician\u2003", tag: "OR", want: "licensed electrician OR"},
		{name: "removes active tag", search: "Electrician TX", tag: "TX", want: "electrician"},
		{name: "removal is case-insensitive", search: "electrician tx", tag: "TX", want: "electrician"},
		{name: "removes every occurrence", search: "plumber tx plumber", tag: "Plumber", want: "tx"},
		{name: "keeps duplicates of other tokens", search: "or or hvac", tag: "HVAC", want: "or or"},
		{name: "removal rejoins tokenized text", search: "Electrician, OR!", tag: "or", want: "electrician"},
		{name: "removing the only token empties search", search: "HVAC", tag: "HVAC", want: ""},
		{name: "substring is not a match", search: "plumbers", tag: "Plumber", want: "plumbers Plumber"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToggleTag(tc.search, tc.tag); got != tc.want {
				t.Errorf("ToggleTag(%q, %q) = %q, want %q", tc.search, tc.tag, got, tc.want)
			}
		})
	}
}

func TestToggleTagTwiceRestoresTokens(t *testing.T) {
	testCases := []struct {
		search string
		tag    string
	}{
		{search: "", tag: "Electrician"},
		{search: "electrician tx", tag: "OR"},
		{search: "Plumber, OR!", tag: "TX"},
		{search: "  hvac   contractor ", tag: "WA"},
	}

	for _, tc := range testCases {
		t.Run(tc.search+"/"+tc.tag, func(t *testing.T) {
			before := Tokenize(tc.search)
			after := Tokenize(ToggleTag(ToggleTag(tc.search, tc.tag), tc.tag))
			if len(before) == 0 && len(after) == 0 {
				return
			}
			if !reflect.DeepEqual(before, after) {
				t.Errorf("tokens after double toggle = %v, want %v", after, before)
			}
		})
	}
}

func TestIsTagActive(t *testing.T) {
	active := Tokenize("Electrician tx")

	tests := []struct {
		tag  string
		want bool
	}{
		{"Electrician", true},
		{"TX", true},
		{"tx", true},
		{"OR", false},
		{"Plumber", false},
	}

	for _, tt := range tests {
		if got := IsTagActive(active, tt.tag); got != tt.want {
			t.Errorf("IsTagActive(%v, %q) = %v, want %v", active, tt.tag, got, tt.want)
		}
	}
}

func TestResetSearch(t *testing.T) {
	if got := ResetSearch(); got != "" {
		t.Errorf("ResetSearch() = %q, want empty", got)
	}
}

func TestTagGroupStates(t *testing.T) {
	groups := domain.DefaultTagGroups()
	states := TagGroupStates(groups, Tokenize("plumber ca"))

	if len(states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(states))
	}
	if states[0].Label != "Step 1: Choose position:" {
		t.Errorf("states[0].Label = %q", states[0].Label)
	}

	active := map[string]bool{}
	for _, g := range states {
		for _, tag := range g.Tags {
			if tag.Active {
				active[tag.Tag] = true
			}
		}
	}
	if len(active) != 2 || !active["Plumber"] || !active["CA"] {
		t.Errorf("active tags = %v, want Plumber and CA", active)
	}
}
