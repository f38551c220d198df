package notification

import "errors"

var (
	// ErrNilRenderer is returned when an Engine is created without a renderer.
	ErrNilRenderer = errors.New("notification: renderer is required")

	// ErrNilNotification is returned when a nil notification is projected.
	ErrNilNotification = errors.New("notification: notification is nil")

	// ErrUnknownKind is returned for kinds that have no registered variant.
	ErrUnknownKind = errors.New("notification: unknown notification kind")

	// ErrMessageKindMismatch is returned when a variant is asked to fill a message of another kind.
	ErrMessageKindMismatch = errors.New("notification: message kind does not match notification kind")

	// ErrDuplicateTemplate is returned when a template set holds two templates for one language.
	ErrDuplicateTemplate = errors.New("notification: duplicate template for language")

	// ErrInvalidPayload is returned when a serialized notification cannot be decoded.
	ErrInvalidPayload = errors.New("notification: invalid payload")
)
