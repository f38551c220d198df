package templatestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// DefaultRedisPrefix namespaces template keys.
const DefaultRedisPrefix = "notify:templates:"

// redisClient is the subset of redis.UniversalClient used by RedisStore.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps the templates of each type as a JSON array at <prefix><type>.
type RedisStore struct {
	db     redisClient
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix overrides DefaultRedisPrefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore wraps a connected client, usually from Connect.
func NewRedisStore(client redisClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{db: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) GetTemplates(ctx context.Context, notificationType string) (notification.Templates, error) {
	if notificationType == "" {
		return nil, ErrInvalidType
	}
	data, err := s.db.Get(ctx, s.prefix+notificationType).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTemplatesNotFound
	}
	if err != nil {
		return nil, err
	}

	var ts notification.Templates
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, errors.Join(ErrInvalidTemplates, err)
	}
	if err := ts.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidTemplates, err)
	}
	return ts, nil
}

// Put stores the templates of notificationType without expiration.
func (s *RedisStore) Put(ctx context.Context, notificationType string, ts notification.Templates) error {
	if notificationType == "" {
		return ErrInvalidType
	}
	if err := ts.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	return s.db.Set(ctx, s.prefix+notificationType, data, 0).Err()
}

// Delete removes the templates of notificationType. Missing keys are ignored.
func (s *RedisStore) Delete(ctx context.Context, notificationType string) error {
	if notificationType == "" {
		return nil
	}
	return s.db.Del(ctx, s.prefix+notificationType).Err()
}
