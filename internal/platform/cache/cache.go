// Package cache provides the process-wide analytics result cache.
//
// Entries are keyed by (actor, purpose) and expire after a fixed TTL. There
// is no capacity bound: keys are bounded by the actors a viewing session
// touches, which is small. Expired entries stay readable through Stale so the
// rate-limited fallback path can serve the most recent result it has
package cache

import (
	"sync"
	"time"

	"skypulse/internal/platform/clock"
)

// DefaultTTL is how long a stored result counts as fresh
const DefaultTTL = 30 * time.Minute

// Key identifies one cached payload
type Key struct {
	Actor   string
	Purpose string
}

type entry struct {
	payload  any
	storedAt time.Time
}

// Cache is a TTL map safe for concurrent use
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration
	clk     clock.Clock
}

// New builds a Cache with the given TTL; ttl <= 0 uses DefaultTTL
func New(ttl time.Duration, clk clock.Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Cache{
		entries: make(map[Key]entry),
		ttl:     ttl,
		clk:     clk,
	}
}

// Get returns the payload for k if it was stored within the TTL
func (c *Cache) Get(k Key) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.clk.Now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.payload, true
}

// Stale returns the payload for k regardless of age.
// Used as the fallback when a fresh fetch is rejected by the rate limiter
func (c *Cache) Stale(k Key) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return e.payload, true
}

// Put stores payload under k unconditionally, stamping the current time.
// Last writer wins; concurrent writers for the same key produce
// near-identical results so the race is acceptable
func (c *Cache) Put(k Key, payload any) {
	now := c.clk.Now()
	c.mu.Lock()
	c.entries[k] = entry{payload: payload, storedAt: now}
	c.mu.Unlock()
}

// Len reports the number of stored entries, fresh or stale
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
