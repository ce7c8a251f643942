package store

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs tests and serves
// as the hot cache in front of the SQLite store.
type MemoryStore struct {
	mu     sync.RWMutex
	docs   map[string]map[string]any
	latest string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]map[string]any{}}
}

func (s *MemoryStore) Save(_ context.Context, key string, doc map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = cloneDoc(doc)
	if key >= s.latest {
		s.latest = key
	}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, key string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) Latest(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == "" {
		return "", ErrNotFound
	}
	return s.latest, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneDoc(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
