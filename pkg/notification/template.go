package notification

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/notifykit/pkg/i18n"
)

// Template is the localized content of one notification type.
type Template struct {
	LanguageCode string `json:"language_code" yaml:"language_code"`
	Subject      string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body         string `json:"body" yaml:"body"`

	// NotificationLayoutID references a shared layout the rendered body is wrapped into.
	NotificationLayoutID string `json:"layout_id,omitempty" yaml:"layout_id,omitempty"`
}

// Templates holds at most one template per language.
type Templates []Template

// FindTemplateForLanguage returns the template whose language matches code.
// Matching is exact apart from case and the separator (en_us == en-US).
func (ts Templates) FindTemplateForLanguage(code string) (Template, bool) {
	for _, t := range ts {
		if i18n.Equal(t.LanguageCode, code) {
			return t, true
		}
	}
	return Template{}, false
}

// Set replaces the template of the same language or appends t.
func (ts Templates) Set(t Template) Templates {
	for i := range ts {
		if i18n.Equal(ts[i].LanguageCode, t.LanguageCode) {
			ts[i] = t
			return ts
		}
	}
	return append(ts, t)
}

// Validate reports a template set holding two templates for one language.
func (ts Templates) Validate() error {
	for i := range ts {
		for j := i + 1; j < len(ts); j++ {
			if i18n.Equal(ts[i].LanguageCode, ts[j].LanguageCode) {
				return fmt.Errorf("%w: %q", ErrDuplicateTemplate, ts[i].LanguageCode)
			}
		}
	}
	return nil
}

// Languages lists the languages covered by the set.
func (ts Templates) Languages() []string {
	langs := make([]string, len(ts))
	for i, t := range ts {
		langs[i] = t.LanguageCode
	}
	return langs
}

// Clone returns an independent copy of the set.
func (ts Templates) Clone() Templates {
	return slices.Clone(ts)
}

// Resolver selects a template for a requested language.
// An exact match wins; otherwise DefaultLanguage is tried when set.
type Resolver struct {
	DefaultLanguage string
}

// Resolve returns the best template for code, or false when none applies.
func (r Resolver) Resolve(ts Templates, code string) (Template, bool) {
	if t, ok := ts.FindTemplateForLanguage(code); ok {
		return t, true
	}
	if r.DefaultLanguage == "" {
		return Template{}, false
	}
	return ts.FindTemplateForLanguage(r.DefaultLanguage)
}
