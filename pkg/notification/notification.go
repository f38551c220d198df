package notification

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Notification is a typed request to inform someone through one channel.
//
// Implementations are a closed set of variants selected by Kind. Each variant
// handles its own channel fields and delegates common fields to Base.
// A notification must not be mutated while it is being rendered.
type Notification interface {
	// Kind reports the channel variant.
	Kind() Kind
	// Common exposes the fields shared by all variants.
	Common() *Base
	// Parameters returns the declared parameters followed by caller supplied ones.
	Parameters() Parameters
	// NewMessage returns an empty message of the matching kind.
	NewMessage() Message
	// ToMessage renders the notification into msg.
	ToMessage(ctx context.Context, msg Message, e *Engine) error
	// ReduceDetails trims fields not selected by the response group.
	ReduceDetails(responseGroup string)
	// PopulateFromOther copies fields from other onto the receiver and returns the receiver.
	PopulateFromOther(other Notification) Notification
	// SetFromTo sets the sender and recipient routing fields.
	SetFromTo(from, to string)
	// Clone returns a deep copy.
	Clone() Notification
}

// Tenant identifies the owner of a notification.
type Tenant struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsZero reports whether the tenant is unset.
func (t Tenant) IsZero() bool { return t.ID == "" && t.Type == "" }

// Base holds the fields common to every notification kind.
type Base struct {
	ID           string     `json:"id,omitempty" yaml:"id,omitempty"`
	Type         string     `json:"type" yaml:"type"`
	Tenant       Tenant     `json:"tenant,omitzero" yaml:"tenant,omitempty"`
	IsActive     bool       `json:"is_active" yaml:"is_active"`
	LanguageCode string     `json:"language_code,omitempty" yaml:"language_code,omitempty"`
	Templates    Templates  `json:"templates,omitempty" yaml:"templates,omitempty"`
	Parameters   Parameters `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// SetParameter adds or replaces a caller supplied parameter.
func (b *Base) SetParameter(name, label string, value any) {
	b.Parameters = b.Parameters.Set(Parameter{Name: name, Label: label, Value: value})
}

// project fills the common part of a message. The requested language wins
// over the notification language.
func (b *Base) project(m *MessageBase, params Parameters) {
	m.NotificationID = b.ID
	m.NotificationType = b.Type
	m.Tenant = b.Tenant
	if m.LanguageCode == "" {
		m.LanguageCode = b.LanguageCode
	}
	m.Parameters = params.Clone()
}

func (b *Base) reduceDetails(g ResponseGroup) {
	if !g.Has(ResponseGroupWithTemplates) {
		for i := range b.Templates {
			b.Templates[i].Subject = ""
			b.Templates[i].Body = ""
		}
	}
	if !g.Has(ResponseGroupWithParameters) {
		b.Parameters = nil
	}
}

// populateFrom copies common fields that are present on o.
func (b *Base) populateFrom(o *Base) {
	if o.Type != "" {
		b.Type = o.Type
	}
	if !o.Tenant.IsZero() {
		b.Tenant = o.Tenant
	}
	b.IsActive = o.IsActive
	if o.LanguageCode != "" {
		b.LanguageCode = o.LanguageCode
	}
	if len(o.Parameters) > 0 {
		b.Parameters = o.Parameters.Clone()
	}
	if len(o.Templates) > 0 {
		b.Templates = o.Templates.Clone()
	}
}

func (b Base) clone() Base {
	b.Templates = b.Templates.Clone()
	b.Parameters = b.Parameters.Clone()
	return b
}

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for diagnostics emitted by model methods.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func diagLogger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// kindMismatch records a populate call across kinds. The call itself stays a no-op
// for variant fields.
func kindMismatch(receiver, other Notification) {
	diagLogger().LogAttrs(context.Background(), slog.LevelDebug, "populate across notification kinds, channel fields skipped",
		logger.NotificationType(receiver.Common().Type),
		logger.Kind(receiver.Kind().String()),
		slog.String("other_kind", other.Kind().String()),
	)
}

// isNil reports an untyped nil or a nil variant pointer.
func isNil(n Notification) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *EmailNotification:
		return v == nil
	case *SmsNotification:
		return v == nil
	}
	return false
}
