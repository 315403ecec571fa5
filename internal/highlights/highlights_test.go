package highlights

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
)

var fixedNow = time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestDetectMetric(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Cut latency by 40%", "percentage", true},
		{"Served 10K+ users", "thousands-plus", true},
		{"Shipped 5+ pages", "count-plus", true},
		{"Processed a Million events", "million", true},
		{"Several thousand records", "thousand", true},
		{"Collaborated with 3 teams", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := DetectMetric(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DetectMetric(%q) = %q,%v want %q,%v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTotalYears(t *testing.T) {
	experience := []content.WorkExperience{
		{StartDate: "Jan 2020", EndDate: "Jan 2021"},
		{StartDate: "Jun 2020", EndDate: "Jun 2021"},
		{StartDate: "Oct 2025", IsCurrent: true},
		{StartDate: "whenever", EndDate: "Jan 2021"},
	}

	got := TotalYears(experience, fixedNow)
	// 366/365 + 365/365 + 380/365: overlapping roles both count.
	want := (366.0 + 365.0 + 380.0) / 365.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func fixturePortfolio() content.Portfolio {
	return content.Portfolio{
		Personal: content.PersonalInfo{Name: "Test User", FirstName: "Test"},
		Skills: content.Skills{Technical: []content.SkillCategory{
			{Items: []content.Skill{{Name: "Go", Level: 90}, {Name: "SQL", Level: 50}, {Name: "Rust", Level: 80}, {Name: "Lua", Level: 10}}},
		}},
		Experience: []content.WorkExperience{
			{
				Company:   "Acme",
				StartDate: "Jan 2020",
				EndDate:   "Jan 2023",
				Responsibilities: []string{
					"Built 10+ services",
					"Wrote documentation",
					"Improved throughput by 30%",
				},
				Achievements: []string{"Employee of the month"},
			},
		},
		Projects: []content.Project{
			{ID: "1", Title: "Alpha", Featured: true, TechStack: []string{"Go", "gin", "sqlite", "htmx"}},
			{ID: "2", Title: "Beta"},
			{ID: "3", Title: "Gamma", Featured: true, TechStack: []string{"Rust"}},
			{ID: "4", Title: "Delta", Featured: true, TechStack: []string{"Zig"}},
		},
	}
}

func TestSynthesize(t *testing.T) {
	got := New(fixturePortfolio(), clock).Synthesize()

	if len(got) != maxHighlights {
		t.Fatalf("Expected %d highlights, got %d: %+v", maxHighlights, len(got), got)
	}

	want := []Highlight{
		{Type: TypeSummary, Icon: "briefcase", Text: "3+ years of professional experience specializing in Go, Rust, SQL", Priority: 1},
		{Type: TypeAchievement, Icon: "trending-up", Text: "Built 10+ services", Company: "Acme", Priority: 2},
		{Type: TypeAchievement, Icon: "trending-up", Text: "Improved throughput by 30%", Company: "Acme", Priority: 2},
		{Type: TypeAchievement, Icon: "award", Text: "Employee of the month", Company: "Acme", Priority: 2},
		{Type: TypeProject, Icon: "code", Text: "Built Alpha using Go, gin, sqlite", Priority: 3},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Highlight %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSynthesizeSortedAndBounded(t *testing.T) {
	p := fixturePortfolio()
	for i := 0; i < 10; i++ {
		p.Experience[0].Achievements = append(p.Experience[0].Achievements, "Award")
	}

	got := New(p, clock).Synthesize()
	if len(got) > maxHighlights {
		t.Errorf("Expected at most %d highlights, got %d", maxHighlights, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority < got[i-1].Priority {
			t.Errorf("Highlights not sorted by priority at %d: %+v", i, got)
		}
	}
}

func TestSynthesizeEmptyPortfolio(t *testing.T) {
	got := New(content.Portfolio{}, clock).Synthesize()
	if len(got) != 1 || got[0].Type != TypeSummary {
		t.Fatalf("Expected only the summary highlight, got %+v", got)
	}
	if !strings.HasPrefix(got[0].Text, "0+ years") {
		t.Errorf("Unexpected summary text %q", got[0].Text)
	}
}

func TestSynthesizeDefaultDataset(t *testing.T) {
	got := New(content.Default(), clock).Synthesize()
	if len(got) != maxHighlights {
		t.Fatalf("Expected %d highlights, got %d", maxHighlights, len(got))
	}
	if got[0].Text != "2+ years of professional experience specializing in Vercel, Figma, Tailwind CSS" {
		t.Errorf("Unexpected summary %q", got[0].Text)
	}
}

func TestFormatBullets(t *testing.T) {
	got := FormatBullets([]Highlight{{Text: "one"}, {Text: "two"}})
	if got != "• one\n• two" {
		t.Errorf("Unexpected bullets %q", got)
	}
}
