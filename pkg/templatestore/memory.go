package templatestore

import (
	"context"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// MemoryStore keeps templates in memory. Suitable for development and testing.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[string]notification.Templates
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		templates: make(map[string]notification.Templates),
	}
}

// Put replaces the templates of notificationType.
func (s *MemoryStore) Put(notificationType string, ts notification.Templates) error {
	if notificationType == "" {
		return ErrInvalidType
	}
	if err := ts.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[notificationType] = ts.Clone()
	return nil
}

// Delete removes the templates of notificationType.
func (s *MemoryStore) Delete(notificationType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.templates, notificationType)
}

// GetTemplates returns a copy so callers cannot mutate stored data.
func (s *MemoryStore) GetTemplates(ctx context.Context, notificationType string) (notification.Templates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.templates[notificationType]
	if !ok {
		return nil, ErrTemplatesNotFound
	}
	return ts.Clone(), nil
}
