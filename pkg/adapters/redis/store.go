package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.ResultCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
}

type Option func(*Cache)

// WithPrefix sets the key prefix for cached expressions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "fsa:regex:",
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get retrieves an expression from Redis.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Set stores an expression. Use 0 for no expiration.
func (c *Cache) Set(ctx context.Context, key, expr string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), expr, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Ping checks connectivity, used at startup so a bad address fails early.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
