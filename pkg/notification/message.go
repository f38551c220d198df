package notification

import "time"

// Message is the rendered, delivery ready projection of a notification.
// Messages are snapshots owned by the caller.
type Message interface {
	Kind() Kind
	Common() *MessageBase
	ReduceDetails(responseGroup string)
}

// MessageBase holds the fields common to every message kind.
type MessageBase struct {
	ID               string     `json:"id"`
	NotificationID   string     `json:"notification_id,omitempty"`
	NotificationType string     `json:"notification_type"`
	Tenant           Tenant     `json:"tenant,omitzero"`
	LanguageCode     string     `json:"language_code,omitempty"`
	Parameters       Parameters `json:"parameters,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (m *MessageBase) reduceDetails(g ResponseGroup) {
	if !g.Has(ResponseGroupWithParameters) {
		m.Parameters = nil
	}
}

// EmailMessage is a rendered email.
type EmailMessage struct {
	MessageBase
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	CC          []string          `json:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}

func (m *EmailMessage) Kind() Kind           { return KindEmail }
func (m *EmailMessage) Common() *MessageBase { return &m.MessageBase }

// ReduceDetails drops attachments unless WithAttachments is requested.
func (m *EmailMessage) ReduceDetails(responseGroup string) {
	g := ParseResponseGroup(responseGroup)
	if !g.Has(ResponseGroupWithAttachments) {
		m.Attachments = nil
	}
	m.MessageBase.reduceDetails(g)
}

// SmsMessage is a rendered text message.
type SmsMessage struct {
	MessageBase
	Body   string `json:"body"`
	Number string `json:"number"`
	From   string `json:"from,omitempty"`
}

func (m *SmsMessage) Kind() Kind           { return KindSms }
func (m *SmsMessage) Common() *MessageBase { return &m.MessageBase }

func (m *SmsMessage) ReduceDetails(responseGroup string) {
	m.MessageBase.reduceDetails(ParseResponseGroup(responseGroup))
}
