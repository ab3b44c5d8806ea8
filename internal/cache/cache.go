// Package cache is the process-local lookaside cache in front of the article
// catalog. Entries are never invalidated on write; they only expire.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache stores values for a fixed time-to-live. A TTL of zero keeps entries
// for the life of the process.
type Cache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *Cache {
	expiration := ttl
	cleanup := 2 * ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &Cache{
		store: gocache.New(expiration, cleanup),
	}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.store.SetDefault(key, value)
}

func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// GetAs returns the cached value for key when it has type T.
func GetAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Key derives a stable cache key from a prefix and the JSON form of params.
func Key(prefix string, params any) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}
	return prefix + string(b), nil
}
