package external

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// MemoryCacheProvider keeps serialized reports in process memory.
// Expired entries are dropped when they are next read.
type MemoryCacheProvider struct {
	mu      sync.RWMutex
	entries map[string]cachedReport
	counter hitCounter
	now     func() time.Time
}

type cachedReport struct {
	payload []byte
	expires time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		entries: make(map[string]cachedReport),
		now:     time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expires) {
		c.counter.hit()
		return entry.payload, nil
	}
	if ok {
		c.dropExpired(key, entry.expires)
	}
	c.counter.miss()
	return nil, errors.NewNotFoundError("cache miss")
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateCacheWrite(key, value, ttl); err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = cachedReport{payload: value, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateCacheKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.counter.snapshot()
}

// Len returns the number of stored entries, expired or not
func (c *MemoryCacheProvider) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// dropExpired removes key unless a newer Set replaced it after the read
func (c *MemoryCacheProvider) dropExpired(key string, expires time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok && entry.expires.Equal(expires) {
		delete(c.entries, key)
	}
}
