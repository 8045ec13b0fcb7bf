// Package cache provides a small generic TTL cache over dgraph-io/ristretto,
// used to keep hot read paths (agent health probing) cheap.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// TTL is a typed in-process cache where every entry expires after the
// configured duration. Safe for concurrent use.
type TTL[V any] struct {
	c   *ristretto.Cache[string, V]
	ttl time.Duration
}

// NewTTL creates a TTL cache holding up to maxEntries values.
func NewTTL[V any](maxEntries int64, ttl time.Duration) (*TTL[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: maxEntries * 10, // ~10x expected items
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &TTL[V]{c: c, ttl: ttl}, nil
}

// Get retrieves a value, reporting whether a live entry was found.
func (t *TTL[V]) Get(key string) (V, bool) {
	return t.c.Get(key)
}

// Set stores a value under key with the cache's TTL. Ristretto admits
// asynchronously; Wait makes the entry visible to immediate readers, which
// the health path relies on.
func (t *TTL[V]) Set(key string, value V) {
	t.c.SetWithTTL(key, value, 1, t.ttl)
	t.c.Wait()
}

// Delete removes a value from the cache.
func (t *TTL[V]) Delete(key string) {
	t.c.Del(key)
}

// Close shuts down the cache and releases resources.
func (t *TTL[V]) Close() {
	t.c.Close()
}
