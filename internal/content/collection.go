package content

import (
	"sort"
)

// AllSkills flattens the technical skill categories in declaration order.
func (p Portfolio) AllSkills() []Skill {
	var skills []Skill
	for _, cat := range p.Skills.Technical {
		skills = append(skills, cat.Items...)
	}
	return skills
}

// TopSkills returns the n highest-level skills. Ties keep declaration order.
func (p Portfolio) TopSkills(n int) []Skill {
	skills := p.AllSkills()
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Level > skills[j].Level
	})
	if n >= 0 && n < len(skills) {
		skills = skills[:n]
	}
	return skills
}

// SkillNames is a convenience for rendering skill lists.
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

// CurrentRole returns the first work entry flagged as current.
func (p Portfolio) CurrentRole() (WorkExperience, bool) {
	for _, exp := range p.Experience {
		if exp.IsCurrent {
			return exp, true
		}
	}
	return WorkExperience{}, false
}

// FeaturedProjects returns featured projects in collection order.
func (p Portfolio) FeaturedProjects() []Project {
	var featured []Project
	for _, proj := range p.Projects {
		if proj.Featured {
			featured = append(featured, proj)
		}
	}
	return featured
}

// ProjectBySlug looks a project up by its URL slug.
func (p Portfolio) ProjectBySlug(slug string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.Slug == slug {
			return proj, true
		}
	}
	return Project{}, false
}

// AllTechStacks returns every distinct tech-stack entry, sorted.
func (p Portfolio) AllTechStacks() []string {
	seen := make(map[string]bool)
	var techs []string
	for _, proj := range p.Projects {
		for _, tech := range proj.TechStack {
			if !seen[tech] {
				seen[tech] = true
				techs = append(techs, tech)
			}
		}
	}
	sort.Strings(techs)
	return techs
}

// Categories returns distinct project categories in first-seen order.
func (p Portfolio) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, proj := range p.Projects {
		if !seen[proj.Category] {
			seen[proj.Category] = true
			categories = append(categories, proj.Category)
		}
	}
	return categories
}

// Years returns distinct project years, newest first.
func (p Portfolio) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, proj := range p.Projects {
		if !seen[proj.Year] {
			seen[proj.Year] = true
			years = append(years, proj.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Statuses returns distinct project statuses in first-seen order.
func (p Portfolio) Statuses() []Status {
	seen := make(map[Status]bool)
	var statuses []Status
	for _, proj := range p.Projects {
		if !seen[proj.Status] {
			seen[proj.Status] = true
			statuses = append(statuses, proj.Status)
		}
	}
	return statuses
}
