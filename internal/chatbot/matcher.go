// Package chatbot answers visitor questions about the portfolio with
// keyword-matched, data-interpolated canned replies.
package chatbot

import (
	"fmt"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

type Intent string

const (
	IntentSkills     Intent = "skills"
	IntentExperience Intent = "experience"
	IntentProjects   Intent = "projects"
	IntentEducation  Intent = "education"
	IntentContact    Intent = "contact"
	IntentGeneral    Intent = "general"
)

const answerSkillCount = 8

// KeywordRule maps a set of lower-case substrings to an intent.
type KeywordRule struct {
	Intent   Intent
	Keywords []string
}

// KeywordRules is evaluated in order and the first rule with any keyword
// contained in the question wins.
var KeywordRules = []KeywordRule{
	{Intent: IntentSkills, Keywords: []string{"skill", "technolog", "what do you know"}},
	{Intent: IntentExperience, Keywords: []string{"experience", "work", "job"}},
	{Intent: IntentProjects, Keywords: []string{"project", "built"}},
	{Intent: IntentEducation, Keywords: []string{"education", "degree", "university"}},
	{Intent: IntentContact, Keywords: []string{"contact", "email", "hire"}},
}

// SuggestedQuestions are offered to visitors before they type anything.
var SuggestedQuestions = []string{
	"What are your skills?",
	"Tell me about your experience",
	"What projects have you built?",
}

// Response is a single chatbot answer.
type Response struct {
	Type   Intent `json:"type"`
	Answer string `json:"answer"`
}

// Matcher is stateless: every call sees only the current question.
type Matcher struct {
	portfolio content.Portfolio
}

func NewMatcher(p content.Portfolio) *Matcher {
	return &Matcher{portfolio: p}
}

// Classify returns the intent of question, IntentGeneral when nothing matches.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, rule := range KeywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(q, kw) {
				return rule.Intent
			}
		}
	}
	return IntentGeneral
}

// Answer always returns a non-empty answer.
func (m *Matcher) Answer(question string) Response {
	intent := Classify(question)
	return Response{Type: intent, Answer: m.render(intent)}
}

func (m *Matcher) render(intent Intent) string {
	p := m.portfolio

	switch intent {
	case IntentSkills:
		skills := content.SkillNames(p.TopSkills(answerSkillCount))
		if len(skills) == 0 {
			break
		}
		return fmt.Sprintf("My top skills include %s. I have experience across frontend, backend, and DevOps technologies.", strings.Join(skills, ", "))

	case IntentExperience:
		if current, ok := p.CurrentRole(); ok {
			return fmt.Sprintf("I'm currently a %s at %s. I have %d positions in my career history.", current.Role, current.Company, len(p.Experience))
		}
		if len(p.Experience) > 0 {
			latest := p.Experience[0]
			return fmt.Sprintf("Most recently I worked as a %s at %s. I have %d positions in my career history.", latest.Role, latest.Company, len(p.Experience))
		}

	case IntentProjects:
		answer := fmt.Sprintf("I've built %d projects.", len(p.Projects))
		featured := p.FeaturedProjects()
		if len(featured) > 0 {
			titles := make([]string, 0, len(featured))
			for _, proj := range featured {
				titles = append(titles, proj.Title)
			}
			answer += fmt.Sprintf(" Some highlights include: %s.", strings.Join(titles, ", "))
		}
		return answer

	case IntentEducation:
		if len(p.Education) > 0 {
			edu := p.Education[0]
			return fmt.Sprintf("I have a %s in %s from %s.", edu.Degree, edu.Field, edu.Institution)
		}

	case IntentContact:
		if p.Personal.Email != "" {
			answer := fmt.Sprintf("You can reach me at %s.", p.Personal.Email)
			if status := p.Personal.Availability.Status; status != "" {
				answer += fmt.Sprintf(" I'm currently %s.", strings.ToLower(status))
			}
			return answer
		}
	}

	return m.general()
}

func (m *Matcher) general() string {
	p := m.portfolio.Personal
	var b strings.Builder
	if p.Name != "" {
		b.WriteString("I'm " + p.Name)
		if p.Title != "" {
			b.WriteString(", a " + p.Title)
		}
		b.WriteString(". ")
	}
	if p.ShortBio != "" {
		b.WriteString(p.ShortBio + " ")
	}
	b.WriteString("Feel free to ask about my skills, experience, projects, or education!")
	return b.String()
}
