package store

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc(name string) map[string]any {
	return map[string]any{
		"projectName":  name,
		"keyDistances": []any{"CBD - 4 km", "Airport - 22 km"},
		"floorPlans": []any{
			map[string]any{"id": "plan-1", "name": "2 BHK", "area": "1,120 sq.ft."},
		},
	}
}

func TestNewKeyShape(t *testing.T) {
	re := regexp.MustCompile(`^\d{13}-[0-9a-f]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		key := NewKey()
		assert.Regexp(t, re, key)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "k1", sampleDoc("Azure Bay")))
	doc, err := s.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Azure Bay", doc["projectName"])

	// stored copies are isolated from caller mutation
	doc["projectName"] = "mutated"
	again, err := s.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Azure Bay", again["projectName"])
}

func TestMemoryStore_Latest(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "1000-aaaaaaaa", sampleDoc("First")))
	require.NoError(t, s.Save(ctx, "2000-bbbbbbbb", sampleDoc("Second")))

	key, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2000-bbbbbbbb", key)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "k1", sampleDoc("Azure Bay")))
	doc, err := s.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Azure Bay", doc["projectName"])
	assert.Len(t, doc["keyDistances"], 2)

	plans, ok := doc["floorPlans"].([]any)
	require.True(t, ok)
	require.Len(t, plans, 1)
	plan, ok := plans[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2 BHK", plan["name"])
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "k1", sampleDoc("Before")))
	require.NoError(t, s.Save(ctx, "k1", sampleDoc("After")))

	doc, err := s.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "After", doc["projectName"])
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, "k1", sampleDoc("Durable")))
	require.NoError(t, s1.Close())

	s2, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	doc, err := s2.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Durable", doc["projectName"])

	key, err := s2.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k1", key)
}

func TestLayeredStore_ReadThrough(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	durable, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	layered := NewLayeredStore(durable)
	defer layered.Close()

	ctx := context.Background()
	require.NoError(t, durable.Save(ctx, "cold", sampleDoc("Cold Doc")))

	// first load comes from the durable layer and warms the cache
	doc, err := layered.Load(ctx, "cold")
	require.NoError(t, err)
	assert.Equal(t, "Cold Doc", doc["projectName"])

	cached, err := layered.cache.Load(ctx, "cold")
	require.NoError(t, err)
	assert.Equal(t, "Cold Doc", cached["projectName"])
}

func TestLayeredStore_WriteThrough(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	durable, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	layered := NewLayeredStore(durable)
	defer layered.Close()

	ctx := context.Background()
	require.NoError(t, layered.Save(ctx, "k1", sampleDoc("Both Layers")))

	fromDurable, err := durable.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Both Layers", fromDurable["projectName"])

	fromCache, err := layered.cache.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Both Layers", fromCache["projectName"])
}
