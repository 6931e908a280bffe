//go:build !integration

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration, capacity int) (*IdempotencyStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := NewIdempotencyStore(ttl, capacity)
	store.now = clock.Now
	t.Cleanup(store.Stop)
	return store, clock
}

func TestIdempotencyStore_Lifecycle(t *testing.T) {
	store, _ := newTestStore(t, time.Hour, 0)

	result, _ := store.begin("k", "body-a")
	require.Equal(t, beginNew, result)

	result, _ = store.begin("k", "body-a")
	assert.Equal(t, beginInFlight, result)

	result, _ = store.begin("k", "body-b")
	assert.Equal(t, beginMismatch, result)

	store.complete("k", &cachedResponse{StatusCode: 200, Body: []byte(`{"ok":true}`)})
	result, cached := store.begin("k", "body-a")
	require.Equal(t, beginReplay, result)
	assert.Equal(t, `{"ok":true}`, string(cached.Body))
}

func TestIdempotencyStore_AbandonAllowsRetry(t *testing.T) {
	store, _ := newTestStore(t, time.Hour, 0)

	result, _ := store.begin("k", "f")
	require.Equal(t, beginNew, result)
	store.abandon("k")

	result, _ = store.begin("k", "other")
	assert.Equal(t, beginNew, result)
}

func TestIdempotencyStore_AbandonKeepsCompleted(t *testing.T) {
	store, _ := newTestStore(t, time.Hour, 0)

	store.begin("k", "f")
	store.complete("k", &cachedResponse{StatusCode: 201})
	store.abandon("k")

	result, _ := store.begin("k", "f")
	assert.Equal(t, beginReplay, result)
}

func TestIdempotencyStore_Expiry(t *testing.T) {
	store, clock := newTestStore(t, time.Minute, 0)

	store.begin("k", "f")
	store.complete("k", &cachedResponse{StatusCode: 200})

	clock.Advance(2 * time.Minute)
	result, _ := store.begin("k", "f")
	assert.Equal(t, beginNew, result, "expired responses are not replayed")

	clock.Advance(2 * time.Minute)
	store.sweep()
	assert.Zero(t, store.Len())
}

func TestIdempotencyStore_CapacityEvictsLeastRecent(t *testing.T) {
	// capacity below the shard count leaves one slot per shard
	store, _ := newTestStore(t, time.Hour, 1)

	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		store.begin(key, "f")
		store.complete(key, &cachedResponse{StatusCode: 200})
	}
	for _, sh := range store.shards {
		assert.LessOrEqual(t, len(sh.items), 1)
	}
}
