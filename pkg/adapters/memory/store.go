package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

type entry struct {
	expr      string
	expiresAt time.Time // zero means never
}

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]entry
	mu   sync.RWMutex
	now  func() time.Time
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Get returns the cached expression, honouring expiry.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", domain.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		// Lazy cleanup
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return "", domain.ErrCacheMiss
	}
	return e.expr, nil
}

// Set stores the expression.
func (c *Cache) Set(ctx context.Context, key, expr string, ttl time.Duration) error {
	e := entry{expr: expr}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = e
	return nil
}

// Delete removes the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
