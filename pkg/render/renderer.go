package render

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"text/template"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notifykit/pkg/cache"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Config holds renderer settings loaded from the environment.
type Config struct {
	CacheSize int `env:"NOTIFY_RENDER_CACHE_SIZE" envDefault:"256"`
}

// Options converts the config into renderer options.
func (c Config) Options() []Option {
	if c.CacheSize <= 0 {
		return nil
	}
	return []Option{WithCacheSize(c.CacheSize)}
}

// Renderer renders notification templates with text/template.
//
// Every parameter is available both as a niladic function and as a field of
// dot, so {{Recipient}} and {{.Recipient}} are equivalent. Referencing an
// unknown parameter is an error. Bodies rendered with UseLayouts are wrapped
// into the registered layout of the template; an unknown layout leaves the
// body unwrapped.
type Renderer struct {
	mu      sync.RWMutex
	layouts map[string]Layout

	parsed *cache.LRU[string, *template.Template]
	logger *slog.Logger
}

var _ notification.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout registers a layout under id.
func WithLayout(id string, l Layout) Option {
	return func(r *Renderer) {
		r.layouts[id] = l
	}
}

// WithCacheSize sets how many parsed templates are kept.
func WithCacheSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.parsed = cache.New[string, *template.Template](n)
		}
	}
}

// WithLogger sets the logger for the Renderer.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		layouts: make(map[string]Layout),
		parsed:  cache.New[string, *template.Template](256),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterLayout adds or replaces the layout stored under id.
func (r *Renderer) RegisterLayout(id string, l Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[id] = l
}

func (r *Renderer) layout(id string) (Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.layouts[id]
	return l, ok
}

// Render implements notification.Renderer.
func (r *Renderer) Render(ctx context.Context, rc notification.RenderContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := r.execute(rc.Template, rc.Parameters)
	if err != nil {
		return "", err
	}

	if !rc.UseLayouts || rc.LayoutID == "" {
		return out, nil
	}
	l, ok := r.layout(rc.LayoutID)
	if !ok {
		r.logger.LogAttrs(ctx, slog.LevelDebug, "layout not registered, body left unwrapped",
			slog.String("layout_id", rc.LayoutID),
			logger.Language(rc.LanguageCode),
		)
		return out, nil
	}
	return Component(ctx, l(templ.Raw(out)))
}

func (r *Renderer) execute(src string, params map[string]any) (string, error) {
	if src == "" {
		return "", nil
	}
	names := funcNames(params)
	t, err := r.parse(src, names)
	if err != nil {
		return "", err
	}

	funcs := make(template.FuncMap, len(names))
	for _, name := range names {
		v := params[name]
		funcs[name] = func() any { return v }
	}
	t.Funcs(funcs)

	var sb strings.Builder
	if err := t.Execute(&sb, params); err != nil {
		return "", errors.Join(ErrExecuteTemplate, err)
	}
	return sb.String(), nil
}

// parse returns a private clone of the cached parse tree for src.
func (r *Renderer) parse(src string, names []string) (*template.Template, error) {
	key := strings.Join(names, ",") + "\x00" + src
	t, ok := r.parsed.Get(key)
	if !ok {
		placeholders := make(template.FuncMap, len(names))
		for _, name := range names {
			placeholders[name] = func() any { return nil }
		}
		var err error
		t, err = template.New("notification").
			Option("missingkey=error").
			Funcs(placeholders).
			Parse(src)
		if err != nil {
			return nil, errors.Join(ErrParseTemplate, err)
		}
		r.parsed.Put(key, t)
	}
	c, err := t.Clone()
	if err != nil {
		return nil, errors.Join(ErrParseTemplate, err)
	}
	// Clone does not carry template options.
	return c.Option("missingkey=error"), nil
}

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// builtins of text/template keep their meaning even when a parameter shares the name.
var builtins = []string{
	"and", "call", "html", "index", "slice", "js", "len", "not", "or",
	"print", "printf", "println", "urlquery", "eq", "ge", "gt", "le", "lt", "ne",
}

func funcNames(params map[string]any) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		if identRegex.MatchString(name) && !slices.Contains(builtins, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
