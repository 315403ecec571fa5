// Package finder scores, filters and suggests portfolio projects against
// free-text queries.
package finder

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Zachkp/portfolio/internal/content"
)

// Score weights. A zero total excludes the project from search results.
const (
	titlePhraseScore       = 100
	titleWordScore         = 20
	techPhraseScore        = 50
	techWordScore          = 15
	descriptionPhraseScore = 30
)

// AllValues disables the category and status filters.
const AllValues = "all"

// FilterSet narrows results after scoring. Zero values disable a filter.
type FilterSet struct {
	Category  string   `json:"category,omitempty" form:"category"`
	TechStack []string `json:"techStack,omitempty" form:"tech"`
	Year      string   `json:"year,omitempty" form:"year"`
	Status    string   `json:"status,omitempty" form:"status"`
}

// Match is a project paired with its relevance score. Score is zero when no
// query was given.
type Match struct {
	Project content.Project `json:"project"`
	Score   int             `json:"score"`
}

// Finder answers project queries over a fixed collection.
type Finder struct {
	projects []content.Project
}

// New creates a Finder over projects. The slice is never modified.
func New(projects []content.Project) *Finder {
	return &Finder{projects: projects}
}

// Find returns the projects matching query and filters, best match first.
func (f *Finder) Find(query string, filters FilterSet) []content.Project {
	matches := f.Search(query, filters)
	projects := make([]content.Project, 0, len(matches))
	for _, m := range matches {
		projects = append(projects, m.Project)
	}
	return projects
}

// Search is Find with scores attached. Only a zero-length query skips
// scoring; a whitespace-only query trims to "" and so matches every
// project, ranked by score.
func (f *Finder) Search(query string, filters FilterSet) []Match {
	matches := make([]Match, 0, len(f.projects))
	if query == "" {
		for _, p := range f.projects {
			matches = append(matches, Match{Project: p})
		}
	} else {
		q := normalize(query)
		words := queryWords(q)
		for _, p := range f.projects {
			if score := scoreProject(p, q, words); score > 0 {
				matches = append(matches, Match{Project: p, Score: score})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})
	}

	return applyFilters(matches, filters)
}

// Score computes the relevance of a single project for query.
func Score(p content.Project, query string) int {
	if query == "" {
		return 0
	}
	q := normalize(query)
	return scoreProject(p, q, queryWords(q))
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// queryWords drops single-character tokens; they match nearly everything.
func queryWords(q string) []string {
	var words []string
	for _, w := range strings.Fields(q) {
		if utf8.RuneCountInString(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

func scoreProject(p content.Project, q string, words []string) int {
	score := 0

	title := strings.ToLower(p.Title)
	if strings.Contains(title, q) {
		score += titlePhraseScore
	}
	for _, w := range words {
		if strings.Contains(title, w) {
			score += titleWordScore
		}
	}

	for _, tech := range p.TechStack {
		tech = strings.ToLower(tech)
		if strings.Contains(tech, q) {
			score += techPhraseScore
		}
		for _, w := range words {
			if strings.Contains(tech, w) {
				score += techWordScore
			}
		}
	}

	if strings.Contains(strings.ToLower(p.ShortDescription), q) {
		score += descriptionPhraseScore
	}

	return score
}

func applyFilters(matches []Match, filters FilterSet) []Match {
	if filters.Category != "" && filters.Category != AllValues {
		matches = keep(matches, func(p content.Project) bool {
			return p.Category == filters.Category
		})
	}

	if len(filters.TechStack) > 0 {
		matches = keep(matches, func(p content.Project) bool {
			return hasAnyTech(p, filters.TechStack)
		})
	}

	if filters.Year != "" {
		year, err := strconv.Atoi(strings.TrimSpace(filters.Year))
		matches = keep(matches, func(p content.Project) bool {
			return err == nil && p.Year == year
		})
	}

	if filters.Status != "" && filters.Status != AllValues {
		matches = keep(matches, func(p content.Project) bool {
			return string(p.Status) == filters.Status
		})
	}

	return matches
}

func keep(matches []Match, pred func(content.Project) bool) []Match {
	kept := matches[:0:0]
	for _, m := range matches {
		if pred(m.Project) {
			kept = append(kept, m)
		}
	}
	return kept
}

func hasAnyTech(p content.Project, wanted []string) bool {
	for _, w := range wanted {
		for _, tech := range p.TechStack {
			if strings.EqualFold(tech, w) {
				return true
			}
		}
	}
	return false
}
