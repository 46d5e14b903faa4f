package contact

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultLocales are accepted when no locales are configured.
var DefaultLocales = []string{"nl", "en"}

// Submission is a contact form entry.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
}

// Normalize trims every field and lowercases the email and language.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.ToLower(strings.TrimSpace(s.Email)),
		Company: strings.TrimSpace(s.Company),
		Phone:   strings.TrimSpace(s.Phone),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
		Lang:    strings.ToLower(strings.TrimSpace(s.Lang)),
	}
}

// Validate checks a normalized submission against DefaultLocales.
func (s Submission) Validate() error {
	return s.ValidateFor(DefaultLocales)
}

// ValidateFor checks a normalized submission. An empty lang is accepted; a
// set lang must be one of locales.
func (s Submission) ValidateFor(locales []string) error {
	allowed := make([]any, 0, len(locales))
	for _, locale := range locales {
		allowed = append(allowed, strings.ToLower(strings.TrimSpace(locale)))
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.RuneLength(2, 100)),
		validation.Field(&s.Email, validation.Required, validation.Length(3, 254), is.EmailFormat),
		validation.Field(&s.Company, validation.RuneLength(0, 100)),
		validation.Field(&s.Phone, validation.Length(0, 32)),
		validation.Field(&s.Subject, validation.RuneLength(0, 150)),
		validation.Field(&s.Message, validation.Required, validation.RuneLength(10, 5000)),
		validation.Field(&s.Lang, validation.In(allowed...)),
	)
}

// SubmissionSchema is the JSON schema for POST /api/contact bodies. Locale
// membership is checked by the service against the configured locales.
func SubmissionSchema() map[string]any {
	text := func(max int) map[string]any {
		return map[string]any{"type": "string", "maxLength": max}
	}
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []any{"name", "email", "message"},
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1, "maxLength": 100},
			"email":   map[string]any{"type": "string", "minLength": 3, "maxLength": 254},
			"company": text(100),
			"phone":   text(32),
			"subject": text(150),
			"message": map[string]any{"type": "string", "minLength": 1, "maxLength": 5000},
			"lang":    map[string]any{"type": "string", "pattern": "^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})?$"},
		},
	}
}
