// Package cache provides a small in-memory TTL cache keyed by string.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// TTL is a concurrency-safe cache whose entries expire after a fixed
// duration. Expired entries are dropped lazily on access.
type TTL[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a TTL cache with the given entry lifetime.
func New[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewWithNow creates a TTL cache with an injected time source for tests.
func NewWithNow[T any](ttl time.Duration, now func() time.Time) *TTL[T] {
	c := New[T](ttl)
	c.now = now
	return c
}

// Get returns the cached value for key, if present and not expired.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}
	if c.now().After(e.expiry) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the cache's TTL.
func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, expiry: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete removes key from the cache.
func (c *TTL[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of entries, including any not yet evicted.
func (c *TTL[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
