package finder

import (
	"strings"
	"unicode/utf8"
)

const (
	minSuggestLength = 2
	maxSuggestions   = 5
)

// SuggestionType tells the UI whether a suggestion toggles a tech filter or
// fills the search box with a project title.
type SuggestionType string

const (
	SuggestionTech    SuggestionType = "tech"
	SuggestionProject SuggestionType = "project"
)

type Suggestion struct {
	Type  SuggestionType `json:"type"`
	Value string         `json:"value"`
}

// Suggest returns up to five completions for a partial query. Tech-stack
// entries are scanned before project titles and the first occurrence of a
// value wins.
func (f *Finder) Suggest(partial string) []Suggestion {
	suggestions := []Suggestion{}
	if utf8.RuneCountInString(partial) < minSuggestLength {
		return suggestions
	}

	q := strings.ToLower(partial)
	seen := make(map[string]bool)
	add := func(t SuggestionType, value string) {
		if seen[value] {
			return
		}
		seen[value] = true
		suggestions = append(suggestions, Suggestion{Type: t, Value: value})
	}

	for _, p := range f.projects {
		for _, tech := range p.TechStack {
			if strings.Contains(strings.ToLower(tech), q) {
				add(SuggestionTech, tech)
			}
		}
	}
	for _, p := range f.projects {
		if strings.Contains(strings.ToLower(p.Title), q) {
			add(SuggestionProject, p.Title)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
