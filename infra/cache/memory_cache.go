package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
)

// MemoryCache implements RateCache using in-memory storage.
// Expired entries are kept so GetStale can still serve them.
type MemoryCache struct {
	entries map[string]*cacheEntry
	now     func() time.Time
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(time.Now)
}

// NewMemoryCacheWithClock creates an in-memory cache reading time from now.
func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
		now:     now,
	}
}

// Get retrieves a rate from cache
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.CachedRate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, nil
	}
	if !c.now().Before(entry.expiresAt) {
		return nil, nil
	}
	rate := entry.rate
	return &rate, nil
}

// GetStale retrieves the last stored rate, ignoring its expiry.
func (c *MemoryCache) GetStale(_ context.Context, key string) (*domain.CachedRate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, nil
	}
	rate := entry.rate
	return &rate, nil
}

// Set stores a rate in cache with TTL
func (c *MemoryCache) Set(
	_ context.Context,
	key string,
	rate *domain.CachedRate,
	ttl time.Duration,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		rate:      *rate,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

type cacheEntry struct {
	rate      domain.CachedRate
	expiresAt time.Time
}
