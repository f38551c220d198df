package notification

import (
	"context"
	"encoding/json"
	"fmt"
)

// SmsNotification is a notification delivered as a text message.
// Templates for this kind use Body only.
type SmsNotification struct {
	Base   `yaml:",inline"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	From   string `json:"from,omitempty" yaml:"from,omitempty"`
}

var smsParameters = ParameterTable[*SmsNotification]{
	{Name: "Sender", Label: "Sender", Value: func(n *SmsNotification) any { return n.From }},
	{Name: "Recipient", Label: "Recipient", Value: func(n *SmsNotification) any { return n.Number }},
}

// NewSms creates an active SMS notification of the given type.
func NewSms(notificationType string) *SmsNotification {
	return &SmsNotification{Base: Base{Type: notificationType, IsActive: true}}
}

func (n *SmsNotification) Kind() Kind    { return KindSms }
func (n *SmsNotification) Common() *Base { return &n.Base }

func (n *SmsNotification) Parameters() Parameters {
	return smsParameters.Extract(n, n.Base.Parameters)
}

func (n *SmsNotification) NewMessage() Message { return &SmsMessage{} }

func (n *SmsNotification) ToMessage(ctx context.Context, msg Message, e *Engine) error {
	m, ok := msg.(*SmsMessage)
	if !ok {
		return fmt.Errorf("%w: %s into %T", ErrMessageKindMismatch, n.Kind(), msg)
	}
	n.Base.project(&m.MessageBase, n.Parameters())

	if t, found := e.resolve(ctx, n, m); found {
		body, err := e.renderBody(ctx, n, t)
		if err != nil {
			return err
		}
		m.Body = body
	}

	m.Number = n.Number
	m.From = n.From
	return nil
}

// ReduceDetails has no channel specific fields to trim.
func (n *SmsNotification) ReduceDetails(responseGroup string) {
	n.Base.reduceDetails(ParseResponseGroup(responseGroup))
}

func (n *SmsNotification) SetFromTo(from, to string) {
	n.From = from
	n.Number = to
}

func (n *SmsNotification) PopulateFromOther(other Notification) Notification {
	if isNil(other) {
		return n
	}
	if o, ok := other.(*SmsNotification); ok {
		n.Number = o.Number
		n.From = o.From
	} else {
		kindMismatch(n, other)
	}
	n.Base.populateFrom(other.Common())
	return n
}

func (n *SmsNotification) Clone() Notification {
	c := *n
	c.Base = n.Base.clone()
	return &c
}

// MarshalJSON adds the kind discriminator used by Decode.
func (n *SmsNotification) MarshalJSON() ([]byte, error) {
	type plain SmsNotification
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*plain
	}{Kind: n.Kind(), plain: (*plain)(n)})
}
