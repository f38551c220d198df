package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// Attachment is a file sent along with an email.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	From        string       `json:"from,omitempty"`     // Overrides Config.SenderEmail
	SendTo      string       `json:"send_to"`            // Email address of the recipient
	ReplyTo     string       `json:"reply_to,omitempty"` // Overrides Config.SupportEmail
	CC          []string     `json:"cc,omitempty"`
	BCC         []string     `json:"bcc,omitempty"`
	Subject     string       `json:"subject"`       // Subject of the email
	BodyHTML    string       `json:"body_html"`     // HTML body of the email
	Tag         string       `json:"tag,omitempty"` // Optional
	Attachments []Attachment `json:"attachments,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks required fields and address formats.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.From != "" && !emailRegex.MatchString(p.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !emailRegex.MatchString(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	for _, addr := range p.CC {
		if !emailRegex.MatchString(addr) {
			return fmt.Errorf("%w: CC address %q is invalid", ErrInvalidParams, addr)
		}
	}
	for _, addr := range p.BCC {
		if !emailRegex.MatchString(addr) {
			return fmt.Errorf("%w: BCC address %q is invalid", ErrInvalidParams, addr)
		}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	for _, a := range p.Attachments {
		if a.Name == "" {
			return fmt.Errorf("%w: attachment name is required", ErrInvalidParams)
		}
	}
	return nil
}
