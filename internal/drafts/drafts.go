// Package drafts fills fixed contact-message templates for a chosen intent.
package drafts

import (
	"strings"
)

type Intent string

const (
	IntentJob           Intent = "job"
	IntentCollaboration Intent = "collaboration"
	IntentFreelance     Intent = "freelance"
	IntentGeneral       Intent = "general"
)

// Intents lists the known intents in display order.
var Intents = []Intent{IntentJob, IntentCollaboration, IntentFreelance, IntentGeneral}

const companyPlaceholder = "[Company Name]"

// Details carries optional values interpolated into a template.
type Details struct {
	Company string `json:"company,omitempty"`
}

// Draft is a ready-to-edit subject and message.
type Draft struct {
	Intent  Intent `json:"intent"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type template struct {
	subject string
	message string
}

// Placeholders: {name} is the owner's first name, {company} the company.
var templates = map[Intent]template{
	IntentJob: {
		subject: "Job Opportunity",
		message: `Hi {name},

I came across your portfolio and was impressed by your work.

We have an exciting opportunity at {company} that I think would be a great fit for your background.

Would you be open to a quick chat to discuss this further?

Best regards,
[Your Name]`,
	},
	IntentCollaboration: {
		subject: "Collaboration Proposal",
		message: `Hi {name},

I've been following your work and really admire your projects. I'm working on something interesting and think your skills would be perfect for collaboration.

Would you be interested in discussing this opportunity?

Looking forward to hearing from you!`,
	},
	IntentFreelance: {
		subject: "Freelance Project Inquiry",
		message: `Hi {name},

I'm looking for a skilled developer to help with a project. After reviewing your portfolio, I believe you'd be perfect for this.

Would you be available for a brief call to discuss?

Thank you!`,
	},
	IntentGeneral: {
		subject: "Getting in Touch",
		message: `Hi {name},

I came across your portfolio and wanted to reach out. I'd love to connect and learn more about your work.

Best regards,
[Your Name]`,
	},
}

// Generator drafts messages addressed to one portfolio owner.
type Generator struct {
	firstName string
}

func NewGenerator(firstName string) *Generator {
	return &Generator{firstName: firstName}
}

// ParseIntent maps free text to a known intent, falling back to general.
func ParseIntent(s string) Intent {
	intent := Intent(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templates[intent]; ok {
		return intent
	}
	return IntentGeneral
}

// Draft fills the template for intent. Unknown intents use the general
// template.
func (g *Generator) Draft(intent string, details Details) Draft {
	i := ParseIntent(intent)
	tpl := templates[i]

	company := strings.TrimSpace(details.Company)
	if company == "" {
		company = companyPlaceholder
	}

	r := strings.NewReplacer("{name}", g.firstName, "{company}", company)
	return Draft{
		Intent:  i,
		Subject: tpl.subject,
		Message: r.Replace(tpl.message),
	}
}
