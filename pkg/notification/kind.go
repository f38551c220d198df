package notification

import (
	"fmt"
	"slices"
)

// Kind is the channel discriminator of a notification variant.
// It is fixed per concrete type and determines the Message subtype produced.
type Kind string

const (
	KindEmail Kind = "EmailNotification"
	KindSms   Kind = "SmsNotification"
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

var registry = map[Kind]func(notificationType string) Notification{
	KindEmail: func(t string) Notification { return NewEmail(t) },
	KindSms:   func(t string) Notification { return NewSms(t) },
}

// New creates an empty notification of the given kind and type.
func New(kind Kind, notificationType string) (Notification, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return factory(notificationType), nil
}

// Kinds returns all registered kinds in stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
