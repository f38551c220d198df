package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Config holds engine settings loaded from the environment.
type Config struct {
	DefaultLanguage  string        `env:"NOTIFY_DEFAULT_LANGUAGE" envDefault:"en"`
	ConcurrentRender bool          `env:"NOTIFY_CONCURRENT_RENDER" envDefault:"false"`
	RenderTimeout    time.Duration `env:"NOTIFY_RENDER_TIMEOUT" envDefault:"0s"`
}

// Options converts the config into engine options.
func (c Config) Options() []EngineOption {
	opts := []EngineOption{WithDefaultLanguage(c.DefaultLanguage)}
	if c.ConcurrentRender {
		opts = append(opts, WithConcurrentRender())
	}
	if c.RenderTimeout > 0 {
		opts = append(opts, WithRenderTimeout(c.RenderTimeout))
	}
	return opts
}

// Engine projects notifications into messages.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	renderer   Renderer
	resolver   Resolver
	concurrent bool
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDefaultLanguage sets the fallback language used when no template matches.
func WithDefaultLanguage(code string) EngineOption {
	return func(e *Engine) {
		e.resolver.DefaultLanguage = code
	}
}

// WithConcurrentRender renders subject and body in parallel.
func WithConcurrentRender() EngineOption {
	return func(e *Engine) {
		e.concurrent = true
	}
}

// WithRenderTimeout bounds a single ToMessage call.
func WithRenderTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithClock overrides the time source used for message timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithEngineLogger sets the logger for the Engine.
func WithEngineLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine rendering through r.
func NewEngine(r Renderer, opts ...EngineOption) (*Engine, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	e := &Engine{
		renderer: r,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Resolver returns the template resolver in use.
func (e *Engine) Resolver() Resolver {
	return e.resolver
}

// ToMessage renders n for languageCode. An empty languageCode selects the
// notification language. The result is either a complete message or an error;
// a missing template leaves the rendered fields empty.
func (e *Engine) ToMessage(ctx context.Context, n Notification, languageCode string) (Message, error) {
	if n == nil {
		return nil, ErrNilNotification
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg := n.NewMessage()
	mb := msg.Common()
	mb.ID = uuid.NewString()
	mb.CreatedAt = e.now()
	mb.LanguageCode = languageCode

	if err := n.ToMessage(ctx, msg, e); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return msg, nil
}

// resolve selects the template of n for the language of msg. A miss is logged
// and reported as false.
func (e *Engine) resolve(ctx context.Context, n Notification, msg Message) (Template, bool) {
	lang := msg.Common().LanguageCode
	t, ok := e.resolver.Resolve(n.Common().Templates, lang)
	if !ok {
		e.logger.LogAttrs(ctx, slog.LevelDebug, "no template for language, rendering skipped",
			logger.NotificationType(n.Common().Type),
			logger.Kind(n.Kind().String()),
			logger.Language(lang),
		)
	}
	return t, ok
}

// renderSubjectAndBody renders the subject without layout and the body with the
// template layout. Both renders complete before it returns.
func (e *Engine) renderSubjectAndBody(ctx context.Context, n Notification, t Template) (subject, body string, err error) {
	params := n.Parameters().Map()
	subjectCtx := e.renderContext(n, params, t, t.Subject, false)
	bodyCtx := e.renderContext(n, params, t, t.Body, true)

	if !e.concurrent {
		if subject, err = e.renderer.Render(ctx, subjectCtx); err != nil {
			return "", "", err
		}
		if body, err = e.renderer.Render(ctx, bodyCtx); err != nil {
			return "", "", err
		}
		return subject, body, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subject, err = e.renderer.Render(gctx, subjectCtx)
		return err
	})
	g.Go(func() error {
		var err error
		body, err = e.renderer.Render(gctx, bodyCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return subject, body, nil
}

// renderBody renders only the body of t, with layout.
func (e *Engine) renderBody(ctx context.Context, n Notification, t Template) (string, error) {
	return e.renderer.Render(ctx, e.renderContext(n, n.Parameters().Map(), t, t.Body, true))
}

func (e *Engine) renderContext(n Notification, params map[string]any, t Template, src string, layout bool) RenderContext {
	rc := RenderContext{
		Template:     src,
		Model:        n,
		Parameters:   params,
		LanguageCode: t.LanguageCode,
	}
	if layout {
		rc.LayoutID = t.NotificationLayoutID
		rc.UseLayouts = true
	}
	return rc
}
