package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// EmailAttachment references binary content attached to an email.
type EmailAttachment struct {
	FileName string `json:"file_name" yaml:"file_name"`
	URL      string `json:"url" yaml:"url"`
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// Clone returns a copy of the attachment.
func (a EmailAttachment) Clone() EmailAttachment { return a }

func cloneAttachments(as []EmailAttachment) []EmailAttachment {
	if as == nil {
		return nil
	}
	out := make([]EmailAttachment, len(as))
	for i, a := range as {
		out[i] = a.Clone()
	}
	return out
}

// EmailNotification is a notification delivered by email.
// From and To are also template parameters, named Sender and Recipient.
type EmailNotification struct {
	Base        `yaml:",inline"`
	From        string            `json:"from,omitempty" yaml:"from,omitempty"`
	To          string            `json:"to,omitempty" yaml:"to,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	CC          []string          `json:"cc,omitempty" yaml:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty" yaml:"bcc,omitempty"`
	Attachments []EmailAttachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

var emailParameters = ParameterTable[*EmailNotification]{
	{Name: "Sender", Label: "Sender", Value: func(n *EmailNotification) any { return n.From }},
	{Name: "Recipient", Label: "Recipient", Value: func(n *EmailNotification) any { return n.To }},
}

// NewEmail creates an active email notification of the given type.
func NewEmail(notificationType string) *EmailNotification {
	return &EmailNotification{
		Base:        Base{Type: notificationType, IsActive: true},
		Attachments: []EmailAttachment{},
	}
}

func (n *EmailNotification) Kind() Kind    { return KindEmail }
func (n *EmailNotification) Common() *Base { return &n.Base }

func (n *EmailNotification) Parameters() Parameters {
	return emailParameters.Extract(n, n.Base.Parameters)
}

func (n *EmailNotification) NewMessage() Message { return &EmailMessage{} }

// ToMessage fills an *EmailMessage. Channel fields are copied after the
// common projection and rendering.
func (n *EmailNotification) ToMessage(ctx context.Context, msg Message, e *Engine) error {
	m, ok := msg.(*EmailMessage)
	if !ok {
		return fmt.Errorf("%w: %s into %T", ErrMessageKindMismatch, n.Kind(), msg)
	}
	params := n.Parameters()
	n.Base.project(&m.MessageBase, params)

	if t, found := e.resolve(ctx, n, m); found {
		subject, body, err := e.renderSubjectAndBody(ctx, n, t)
		if err != nil {
			return err
		}
		m.Subject = subject
		m.Body = body
	}

	m.From = n.From
	m.To = n.To
	m.ReplyTo = n.ReplyTo
	m.CC = slices.Clone(n.CC)
	m.BCC = slices.Clone(n.BCC)
	m.Attachments = cloneAttachments(n.Attachments)
	return nil
}

// ReduceDetails drops attachments unless WithAttachments is requested, then
// reduces common fields.
func (n *EmailNotification) ReduceDetails(responseGroup string) {
	g := ParseResponseGroup(responseGroup)
	if !g.Has(ResponseGroupWithAttachments) {
		n.Attachments = nil
	}
	n.Base.reduceDetails(g)
}

func (n *EmailNotification) SetFromTo(from, to string) {
	n.From = from
	n.To = to
}

// PopulateFromOther copies routing and attachments when other is an email
// notification, then copies common fields.
func (n *EmailNotification) PopulateFromOther(other Notification) Notification {
	if isNil(other) {
		return n
	}
	if o, ok := other.(*EmailNotification); ok {
		n.From = o.From
		n.To = o.To
		n.CC = slices.Clone(o.CC)
		n.BCC = slices.Clone(o.BCC)
		n.ReplyTo = o.ReplyTo
		n.Attachments = cloneAttachments(o.Attachments)
	} else {
		kindMismatch(n, other)
	}
	n.Base.populateFrom(other.Common())
	return n
}

func (n *EmailNotification) Clone() Notification {
	c := *n
	c.Base = n.Base.clone()
	c.CC = slices.Clone(n.CC)
	c.BCC = slices.Clone(n.BCC)
	c.Attachments = cloneAttachments(n.Attachments)
	return &c
}

// MarshalJSON adds the kind discriminator used by Decode.
func (n *EmailNotification) MarshalJSON() ([]byte, error) {
	type plain EmailNotification
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*plain
	}{Kind: n.Kind(), plain: (*plain)(n)})
}
