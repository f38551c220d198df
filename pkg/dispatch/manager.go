package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/notifykit/pkg/i18n"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/templatestore"
)

// Manager renders notifications and routes the messages to a deliverer per kind.
type Manager struct {
	engine      *notification.Engine
	store       notification.TemplateStore
	deliverers  map[notification.Kind]Deliverer
	languages   []string
	concurrency int
	logger      *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTemplateStore loads templates for notifications that carry none.
func WithTemplateStore(s notification.TemplateStore) ManagerOption {
	return func(m *Manager) {
		m.store = s
	}
}

// WithDeliverer routes messages of kind to d.
func WithDeliverer(kind notification.Kind, d Deliverer) ManagerOption {
	return func(m *Manager) {
		if d != nil {
			m.deliverers[kind] = d
		}
	}
}

// WithSupportedLanguages restricts Accept-Language negotiation to langs.
func WithSupportedLanguages(langs ...string) ManagerOption {
	return func(m *Manager) {
		m.languages = langs
	}
}

// WithConcurrency bounds the number of notifications SendBatch processes at once.
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.concurrency = n
	}
}

// WithManagerLogger sets the logger for the Manager.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a manager rendering through engine.
func NewManager(engine *notification.Engine, opts ...ManagerOption) (*Manager, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	m := &Manager{
		engine:     engine,
		deliverers: make(map[notification.Kind]Deliverer),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Render projects n into a message for languageCode without delivering it.
// The caller's notification is never modified.
func (m *Manager) Render(ctx context.Context, n notification.Notification, languageCode string) (notification.Message, error) {
	n, err := m.prepare(ctx, n)
	if err != nil {
		return nil, err
	}
	return m.engine.ToMessage(ctx, n, languageCode)
}

// Preview renders n and trims the message to responseGroup.
func (m *Manager) Preview(ctx context.Context, n notification.Notification, languageCode, responseGroup string) (notification.Message, error) {
	msg, err := m.Render(ctx, n, languageCode)
	if err != nil {
		return nil, err
	}
	msg.ReduceDetails(responseGroup)
	return msg, nil
}

// Send renders n for languageCode and delivers it. Inactive notifications are
// rejected with ErrInactive.
func (m *Manager) Send(ctx context.Context, n notification.Notification, languageCode string) (notification.Message, error) {
	n, err := m.prepare(ctx, n)
	if err != nil {
		return nil, err
	}
	return m.send(ctx, n, languageCode)
}

// SendPreferred negotiates the language from an Accept-Language header and
// sends n. The notification language is the fallback.
func (m *Manager) SendPreferred(ctx context.Context, n notification.Notification, acceptLanguage string) (notification.Message, error) {
	n, err := m.prepare(ctx, n)
	if err != nil {
		return nil, err
	}
	supported := m.languages
	if len(supported) == 0 {
		supported = n.Common().Templates.Languages()
	}
	lang := i18n.ParseAcceptLanguage(acceptLanguage, supported, n.Common().LanguageCode)
	return m.send(ctx, n, lang)
}

// SendBatch sends every notification in languageCode. All notifications are
// attempted; the failures are joined into the returned error.
func (m *Manager) SendBatch(ctx context.Context, ns []notification.Notification, languageCode string) error {
	errs := make([]error, len(ns))
	var g errgroup.Group
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}
	for i, n := range ns {
		g.Go(func() error {
			if _, err := m.Send(ctx, n, languageCode); err != nil {
				errs[i] = fmt.Errorf("notification %d: %w", i, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func (m *Manager) send(ctx context.Context, n notification.Notification, languageCode string) (notification.Message, error) {
	if !n.Common().IsActive {
		return nil, ErrInactive
	}
	d, ok := m.deliverers[n.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDeliverer, n.Kind())
	}

	start := time.Now()
	msg, err := m.engine.ToMessage(ctx, n, languageCode)
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "Failed to render notification",
			logger.NotificationType(n.Common().Type),
			logger.Kind(n.Kind().String()),
			logger.Language(languageCode),
			logger.Error(err),
		)
		return nil, err
	}

	if err := d.Deliver(ctx, msg); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to deliver message",
			logger.MessageID(msg.Common().ID),
			logger.NotificationType(n.Common().Type),
			logger.Error(err),
		)
		return msg, errors.Join(ErrDeliveryFailed, err)
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Message delivered",
		logger.MessageID(msg.Common().ID),
		logger.NotificationType(n.Common().Type),
		logger.Kind(n.Kind().String()),
		logger.Language(msg.Common().LanguageCode),
		logger.Duration(time.Since(start)),
	)
	return msg, nil
}

// prepare returns n, or a clone carrying store templates when n has none.
func (m *Manager) prepare(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n == nil {
		return nil, notification.ErrNilNotification
	}
	if m.store == nil || len(n.Common().Templates) > 0 {
		return n, nil
	}

	ts, err := m.store.GetTemplates(ctx, n.Common().Type)
	if errors.Is(err, templatestore.ErrTemplatesNotFound) {
		m.logger.LogAttrs(ctx, slog.LevelDebug, "No stored templates for notification type",
			logger.NotificationType(n.Common().Type),
		)
		return n, nil
	}
	if err != nil {
		return nil, errors.Join(ErrLoadTemplates, err)
	}

	c := n.Clone()
	c.Common().Templates = ts
	return c, nil
}
