package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no document exists under the requested key.
var ErrNotFound = errors.New("document not found")

// Store persists brochure documents as raw field maps keyed by share key.
type Store interface {
	// Save upserts a document under the given key.
	Save(ctx context.Context, key string, doc map[string]any) error

	// Load retrieves a document by key, or ErrNotFound.
	Load(ctx context.Context, key string) (map[string]any, error)

	// Latest returns the most recently saved key, or ErrNotFound when the
	// store is empty.
	Latest(ctx context.Context) (string, error)

	Close() error
}

// NewKey mints a share key: millisecond timestamp plus a short random
// suffix. Keys sort chronologically and survive collisions within the same
// millisecond.
func NewKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
