package dispatch

import "errors"

var (
	ErrNilEngine      = errors.New("dispatch: engine is required")
	ErrNoDeliverer    = errors.New("dispatch: no deliverer for notification kind")
	ErrInactive       = errors.New("dispatch: notification is inactive")
	ErrLoadTemplates  = errors.New("dispatch: failed to load templates")
	ErrDeliveryFailed = errors.New("dispatch: delivery failed")
)
