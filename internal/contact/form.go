// Package contact validates contact-form submissions and hands them to a
// delivery backend.
package contact

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MinMessageLength = 20

	DefaultCompany = "Not provided"
	DefaultSubject = "New Contact Form Submission"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail requires a local part, an "@" and a domain containing a dot.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Form is the raw contact form as posted by a visitor.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ValidationErrors maps a form field to a user-facing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Validate returns nil when the form may be submitted.
func (f Form) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "Email is required"
	case !IsValidEmail(f.Email):
		errs["email"] = "Invalid email"
	}

	// Subject is written into a mail header.
	if strings.ContainsAny(f.Subject, "\r\n") {
		errs["subject"] = "Subject must be a single line"
	}

	switch {
	case strings.TrimSpace(f.Message) == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(f.Message) < MinMessageLength:
		errs["message"] = "At least 20 characters"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Submission is a validated form with defaults applied.
type Submission struct {
	Name    string
	Email   string
	Company string
	Subject string
	Message string
}

func (f Form) submission() Submission {
	s := Submission{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Company: strings.TrimSpace(f.Company),
		Subject: singleLine(f.Subject),
		Message: f.Message,
	}
	if s.Company == "" {
		s.Company = DefaultCompany
	}
	if s.Subject == "" {
		s.Subject = DefaultSubject
	}
	return s
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
