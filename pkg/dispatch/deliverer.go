package dispatch

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Deliverer hands a rendered message to a transport.
type Deliverer interface {
	Deliver(ctx context.Context, msg notification.Message) error
}

// DelivererFunc adapts a function to the Deliverer interface.
type DelivererFunc func(ctx context.Context, msg notification.Message) error

func (f DelivererFunc) Deliver(ctx context.Context, msg notification.Message) error {
	return f(ctx, msg)
}

// MultiDeliverer combines multiple delivery channels.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

// MultiDelivererOption configures a MultiDeliverer.
type MultiDelivererOption func(*MultiDeliverer)

// WithMultiDelivererLogger sets the logger for the MultiDeliverer.
func WithMultiDelivererLogger(l *slog.Logger) MultiDelivererOption {
	return func(m *MultiDeliverer) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMultiDeliverer creates a new multi-channel deliverer.
func NewMultiDeliverer(deliverers []Deliverer, opts ...MultiDelivererOption) *MultiDeliverer {
	m := &MultiDeliverer{
		deliverers: deliverers,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Deliver sends msg through every channel. Failures are logged, never returned.
func (m *MultiDeliverer) Deliver(ctx context.Context, msg notification.Message) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, msg); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "Failed to deliver message",
				logger.MessageID(msg.Common().ID),
				logger.NotificationType(msg.Common().NotificationType),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

// LogDeliverer writes messages to a logger instead of delivering them.
// Useful for development.
type LogDeliverer struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogDeliverer logs at level through l, or slog.Default when l is nil.
func NewLogDeliverer(l *slog.Logger, level slog.Level) *LogDeliverer {
	if l == nil {
		l = slog.Default()
	}
	return &LogDeliverer{logger: l, level: level}
}

func (d *LogDeliverer) Deliver(ctx context.Context, msg notification.Message) error {
	mb := msg.Common()
	attrs := []slog.Attr{
		logger.MessageID(mb.ID),
		logger.Kind(msg.Kind().String()),
		logger.NotificationType(mb.NotificationType),
		logger.Language(mb.LanguageCode),
	}
	switch m := msg.(type) {
	case *notification.EmailMessage:
		attrs = append(attrs,
			slog.String("to", m.To),
			slog.String("subject", m.Subject),
			slog.Int("attachments", len(m.Attachments)),
		)
	case *notification.SmsMessage:
		attrs = append(attrs,
			slog.String("number", m.Number),
			slog.Int("body_length", len(m.Body)),
		)
	}
	d.logger.LogAttrs(ctx, d.level, "message delivered to log", attrs...)
	return nil
}

// NoOpDeliverer is a deliverer that does nothing.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, notification.Message) error { return nil }
