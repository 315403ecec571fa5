// Package highlights derives ranked résumé bullets from work history and
// featured projects.
package highlights

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
)

const (
	maxHighlights     = 5
	summarySkillCount = 3
	featuredCount     = 2
	projectTechCount  = 3
)

type Type string

const (
	TypeSummary     Type = "summary"
	TypeAchievement Type = "achievement"
	TypeProject     Type = "project"
)

// Highlight is a single synthesized bullet. Lower Priority sorts first.
type Highlight struct {
	Type     Type   `json:"type"`
	Icon     string `json:"icon"`
	Text     string `json:"text"`
	Company  string `json:"company,omitempty"`
	Priority int    `json:"priority"`
}

// MetricPattern marks a responsibility as quantified when it matches.
type MetricPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// MetricPatterns is checked in order; the first match wins.
var MetricPatterns = []MetricPattern{
	{Name: "percentage", Pattern: regexp.MustCompile(`\d+%`)},
	{Name: "thousands-plus", Pattern: regexp.MustCompile(`(?i)\d+k\+`)},
	{Name: "count-plus", Pattern: regexp.MustCompile(`\d+\+`)},
	{Name: "million", Pattern: regexp.MustCompile(`(?i)million`)},
	{Name: "thousand", Pattern: regexp.MustCompile(`(?i)thousand`)},
}

// DetectMetric returns the name of the first pattern matching text.
func DetectMetric(text string) (string, bool) {
	for _, mp := range MetricPatterns {
		if mp.Pattern.MatchString(text) {
			return mp.Name, true
		}
	}
	return "", false
}

// Synthesizer builds highlights from a portfolio. Now is only consulted for
// the length of current roles.
type Synthesizer struct {
	portfolio content.Portfolio
	now       func() time.Time
}

func New(p content.Portfolio, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{portfolio: p, now: now}
}

// Synthesize returns at most five highlights ordered by priority.
func (s *Synthesizer) Synthesize() []Highlight {
	p := s.portfolio
	highlights := make([]Highlight, 0, 8)

	years := TotalYears(p.Experience, s.now())
	topSkills := content.SkillNames(p.TopSkills(summarySkillCount))
	highlights = append(highlights, Highlight{
		Type:     TypeSummary,
		Icon:     "briefcase",
		Text:     fmt.Sprintf("%d+ years of professional experience specializing in %s", int(math.Round(years)), strings.Join(topSkills, ", ")),
		Priority: 1,
	})

	for _, exp := range p.Experience {
		for _, resp := range exp.Responsibilities {
			if _, ok := DetectMetric(resp); ok {
				highlights = append(highlights, Highlight{
					Type:     TypeAchievement,
					Icon:     "trending-up",
					Text:     resp,
					Company:  exp.Company,
					Priority: 2,
				})
			}
		}
		for _, ach := range exp.Achievements {
			highlights = append(highlights, Highlight{
				Type:     TypeAchievement,
				Icon:     "award",
				Text:     ach,
				Company:  exp.Company,
				Priority: 2,
			})
		}
	}

	featured := p.FeaturedProjects()
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	for _, proj := range featured {
		tech := proj.TechStack
		if len(tech) > projectTechCount {
			tech = tech[:projectTechCount]
		}
		highlights = append(highlights, Highlight{
			Type:     TypeProject,
			Icon:     "code",
			Text:     fmt.Sprintf("Built %s using %s", proj.Title, strings.Join(tech, ", ")),
			Priority: 3,
		})
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].Priority < highlights[j].Priority
	})
	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// TotalYears sums the length of every work entry in 365-day years.
// Overlapping entries are counted twice. Entries whose dates cannot be
// parsed contribute nothing.
func TotalYears(experience []content.WorkExperience, now time.Time) float64 {
	total := 0.0
	for _, exp := range experience {
		start, ok := content.ParseMonthYear(exp.StartDate, now)
		if !ok {
			continue
		}
		end := now
		if !exp.IsCurrent {
			if end, ok = content.ParseMonthYear(exp.EndDate, now); !ok {
				continue
			}
		}
		total += end.Sub(start).Hours() / 24 / 365
	}
	return total
}

// FormatBullets renders highlights as a copyable bullet list.
func FormatBullets(highlights []Highlight) string {
	lines := make([]string, 0, len(highlights))
	for _, h := range highlights {
		lines = append(lines, "• "+h.Text)
	}
	return strings.Join(lines, "\n")
}
