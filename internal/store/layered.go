package store

import (
	"context"
	"errors"
)

// LayeredStore is a read-through cache: loads hit memory first and fall back
// to the durable store, saves write through to both.
type LayeredStore struct {
	cache   *MemoryStore
	durable Store
}

func NewLayeredStore(durable Store) *LayeredStore {
	return &LayeredStore{cache: NewMemoryStore(), durable: durable}
}

func (s *LayeredStore) Save(ctx context.Context, key string, doc map[string]any) error {
	if err := s.durable.Save(ctx, key, doc); err != nil {
		return err
	}
	return s.cache.Save(ctx, key, doc)
}

func (s *LayeredStore) Load(ctx context.Context, key string) (map[string]any, error) {
	doc, err := s.cache.Load(ctx, key)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doc, err = s.durable.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Save(ctx, key, doc)
	return doc, nil
}

func (s *LayeredStore) Latest(ctx context.Context) (string, error) {
	return s.durable.Latest(ctx)
}

func (s *LayeredStore) Close() error {
	return s.durable.Close()
}
