// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := Key("newsapi", "rbi repo rate")
	b := Key("newsapi", "rbi repo rate")
	c := Key("bing", "rbi repo rate")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "verdict-engine:v1:newsapi:"))
	assert.Len(t, strings.TrimPrefix(a, "verdict-engine:v1:newsapi:"), 64)
}

func newSQLite(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

// exercise runs the behaviour every Cache implementation shares.
func exercise(t *testing.T, c Cache) {
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), 0))
	got, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, c.Set(ctx, "k1", []byte("v2"), time.Minute))
	got, _ = c.Get(ctx, "k1")
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, c.Delete(ctx, "k1"))
	_, ok = c.Get(ctx, "k1")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Clear(ctx))
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemoryCache(t *testing.T) {
	exercise(t, NewMemoryCache(time.Hour, time.Minute))
}

func TestSQLiteCache(t *testing.T) {
	exercise(t, newSQLite(t))
}

func TestLayered(t *testing.T) {
	exercise(t, NewLayered(NewMemoryCache(time.Hour, time.Minute), newSQLite(t)))
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Hour, time.Minute)
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestSQLiteCacheCreatesDBFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c, err := NewSQLiteCache(dir, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
}

func TestSQLiteCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newSQLite(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "short", []byte("x"), time.Minute))
	require.NoError(t, c.Set(ctx, "long", []byte("y"), 2*time.Hour))

	now = now.Add(90 * time.Minute)

	_, ok := c.Get(ctx, "short")
	assert.False(t, ok, "expired entry is a miss")
	_, ok = c.Get(ctx, "long")
	assert.True(t, ok)

	// The expired row was deleted on read, so nothing is left to purge.
	n, err := c.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	now = now.Add(time.Hour)
	n, err = c.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSQLiteCachePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c1, err := NewSQLiteCache(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, c1.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c1.Close())

	c2, err := NewSQLiteCache(dir, time.Hour)
	require.NoError(t, err)
	defer c2.Close()

	got, ok := c2.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestLayeredPromotesSlowHits(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryCache(time.Hour, time.Minute)
	slow := newSQLite(t)
	require.NoError(t, slow.Set(ctx, "k", []byte("disk"), 0))

	l := NewLayered(fast, slow)
	got, ok := l.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("disk"), got)

	promoted, ok := fast.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("disk"), promoted)
}
