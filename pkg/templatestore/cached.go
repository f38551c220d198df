package templatestore

import (
	"context"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/cache"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// CacheConfig controls the CachedStore decorator.
type CacheConfig struct {
	Size int           `env:"NOTIFY_TEMPLATE_CACHE_SIZE" envDefault:"256"`
	TTL  time.Duration `env:"NOTIFY_TEMPLATE_CACHE_TTL" envDefault:"5m"`
}

// CachedStore memoizes successful lookups of another store.
// Errors, including ErrTemplatesNotFound, are not cached.
type CachedStore struct {
	next  notification.TemplateStore
	cache *cache.LRU[string, notification.Templates]
}

// NewCachedStore wraps next. A non-positive size falls back to 256 entries.
func NewCachedStore(next notification.TemplateStore, cfg CacheConfig, opts ...cache.Option) *CachedStore {
	size := cfg.Size
	if size <= 0 {
		size = 256
	}
	opts = append([]cache.Option{cache.WithTTL(cfg.TTL)}, opts...)
	return &CachedStore{
		next:  next,
		cache: cache.New[string, notification.Templates](size, opts...),
	}
}

func (s *CachedStore) GetTemplates(ctx context.Context, notificationType string) (notification.Templates, error) {
	if ts, ok := s.cache.Get(notificationType); ok {
		return ts.Clone(), nil
	}
	ts, err := s.next.GetTemplates(ctx, notificationType)
	if err != nil {
		return nil, err
	}
	s.cache.Put(notificationType, ts.Clone())
	return ts, nil
}

// Invalidate drops the cached entry of notificationType.
func (s *CachedStore) Invalidate(notificationType string) {
	s.cache.Remove(notificationType)
}

// Purge drops every cached entry.
func (s *CachedStore) Purge() {
	s.cache.Clear()
}
