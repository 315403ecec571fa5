package finder

import (
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/content"
)

func testProjects() []content.Project {
	return []content.Project{
		{
			ID:               "p1",
			Title:            "Landscape Web Application",
			Category:         "client",
			Status:           content.StatusOngoing,
			Year:             2026,
			TechStack:        []string{"React", "Node.js"},
			ShortDescription: "Estimator and booking site for a landscaping business.",
		},
		{
			ID:               "p2",
			Title:            "Terminal Mail",
			Category:         "personal",
			Status:           content.StatusCompleted,
			Year:             2024,
			TechStack:        []string{"Go", "Bubble Tea", "IMAP"},
			ShortDescription: "A terminal email client with fuzzy finding.",
		},
		{
			ID:               "p3",
			Title:            "Game Recommender",
			Category:         "school",
			Status:           content.StatusCompleted,
			Year:             2023,
			TechStack:        []string{"Python", "React Native"},
			ShortDescription: "TF-IDF based game recommendations.",
		},
		{
			ID:               "p4",
			Title:            "Music Player",
			Category:         "personal",
			Status:           content.StatusPlanned,
			Year:             2024,
			TechStack:        []string{"Go", "mpv"},
			ShortDescription: "Stream music from the terminal.",
		},
	}
}

func ids(projects []content.Project) string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return strings.Join(out, ",")
}

func TestFindTechMatchWithoutTitleBonus(t *testing.T) {
	f := New(testProjects()[:1])

	matches := f.Search("react", FilterSet{})
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Score < techPhraseScore {
		t.Errorf("Expected score >= %d, got %d", techPhraseScore, matches[0].Score)
	}
	if matches[0].Score >= titlePhraseScore {
		t.Errorf("Expected no title bonus, got score %d", matches[0].Score)
	}
}

func TestScore(t *testing.T) {
	p := testProjects()[1]

	tests := []struct {
		query string
		want  int
	}{
		// phrase in title + word "terminal" in title + phrase in description
		{"terminal", titlePhraseScore + titleWordScore + descriptionPhraseScore},
		// exact tech "go": phrase + word
		{"go", techPhraseScore + techWordScore},
		// words only: "mail" hits title, "imap" hits tech
		{"mail imap", titleWordScore + techWordScore},
		// single-letter word ignored, no phrase match anywhere
		{"x imap", techWordScore},
		{"", 0},
		// trims to "", a substring of everything
		{"   ", titlePhraseScore + 3*techPhraseScore + descriptionPhraseScore},
		{"kubernetes", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Score(p, tt.query); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestFindEmptyQueryReturnsCollection(t *testing.T) {
	projects := testProjects()
	f := New(projects)

	got := f.Find("", FilterSet{})
	if ids(got) != "p1,p2,p3,p4" {
		t.Errorf("Expected full collection in order, got %s", ids(got))
	}
}

func TestFindWhitespaceQueryIsScored(t *testing.T) {
	f := New(testProjects())

	matches := f.Search("   ", FilterSet{})
	if len(matches) != 4 {
		t.Fatalf("Expected every project, got %d", len(matches))
	}
	// p2 has three tech entries; the rest tie on two and keep collection order.
	got := make([]content.Project, 0, len(matches))
	for _, m := range matches {
		got = append(got, m.Project)
	}
	if ids(got) != "p2,p1,p3,p4" {
		t.Errorf("Expected p2,p1,p3,p4, got %s", ids(got))
	}
	if matches[0].Score != titlePhraseScore+3*techPhraseScore+descriptionPhraseScore {
		t.Errorf("Unexpected top score %d", matches[0].Score)
	}
}

func TestFindOrdersByScoreStable(t *testing.T) {
	f := New(testProjects())

	// p2 and p4 both score 65 for "go" and must keep collection order.
	got := f.Find("go", FilterSet{})
	if ids(got) != "p2,p4" {
		t.Errorf("Expected p2,p4, got %s", ids(got))
	}

	// "React" and "React Native" both score phrase+word; p1 is declared first.
	got = f.Find("react", FilterSet{})
	if ids(got) != "p1,p3" {
		t.Errorf("Expected p1,p3, got %s", ids(got))
	}
}

func TestFindDoesNotMutateInput(t *testing.T) {
	projects := testProjects()
	f := New(projects)

	_ = f.Find("go", FilterSet{Category: "personal"})
	if ids(projects) != "p1,p2,p3,p4" {
		t.Errorf("Input collection was reordered: %s", ids(projects))
	}
}

func TestFindSelfFindableByTitle(t *testing.T) {
	projects := testProjects()
	f := New(projects)

	for _, p := range projects {
		found := false
		for _, got := range f.Find(p.Title, FilterSet{}) {
			if got.ID == p.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("Project %s not found by its own title", p.ID)
		}
	}
}

func TestFindNeverGrowsCollection(t *testing.T) {
	projects := testProjects()
	f := New(projects)

	for _, q := range []string{"", "go", "a", "react node", "terminal email", "zzz"} {
		if got := f.Find(q, FilterSet{}); len(got) > len(projects) {
			t.Errorf("Find(%q) returned %d > %d", q, len(got), len(projects))
		}
	}
}

func TestFilters(t *testing.T) {
	f := New(testProjects())

	tests := []struct {
		name    string
		filters FilterSet
		want    string
	}{
		{"none", FilterSet{}, "p1,p2,p3,p4"},
		{"all category", FilterSet{Category: AllValues, Status: AllValues}, "p1,p2,p3,p4"},
		{"category", FilterSet{Category: "personal"}, "p2,p4"},
		{"tech case-insensitive", FilterSet{TechStack: []string{"go"}}, "p2,p4"},
		{"tech OR semantics", FilterSet{TechStack: []string{"python", "node.js"}}, "p1,p3"},
		{"tech exact not substring", FilterSet{TechStack: []string{"React"}}, "p1"},
		{"year", FilterSet{Year: "2024"}, "p2,p4"},
		{"year non-numeric", FilterSet{Year: "twenty"}, ""},
		{"status", FilterSet{Status: "planned"}, "p4"},
		{"combined", FilterSet{Category: "personal", Year: "2024", Status: "completed"}, "p2"},
		{"unknown category", FilterSet{Category: "nope"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Find("", tt.filters)
			if ids(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, ids(got))
			}
			for _, p := range got {
				if tt.filters.Category != "" && tt.filters.Category != AllValues && p.Category != tt.filters.Category {
					t.Errorf("Project %s violates category filter", p.ID)
				}
				if tt.filters.Status != "" && tt.filters.Status != AllValues && string(p.Status) != tt.filters.Status {
					t.Errorf("Project %s violates status filter", p.ID)
				}
			}
		})
	}
}

func TestFindEmptyCollection(t *testing.T) {
	f := New(nil)
	if got := f.Find("react", FilterSet{Year: "2020"}); len(got) != 0 {
		t.Errorf("Expected empty result, got %d", len(got))
	}
}
