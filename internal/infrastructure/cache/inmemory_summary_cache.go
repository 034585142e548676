package cache

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// InMemorySummaryCache stores report payloads in a process-local map.
// Suitable for single-instance deployments and testing.
type InMemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewInMemorySummaryCache creates a new in-memory summary cache
func NewInMemorySummaryCache() *InMemorySummaryCache {
	return &InMemorySummaryCache{
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
// Expired entries count as misses and are dropped lazily.
func (c *InMemorySummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return e.payload, nil
}

// Set stores the payload under key with the given TTL
func (c *InMemorySummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		payload:   value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *InMemorySummaryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
