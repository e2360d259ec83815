// Package rediscache provides a Redis-backed implementation of the read-model
// cache consumed by query handlers.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client as a byte-oriented cache with per-key TTLs.
// A missing key is a miss, not an error, so query handlers can fall through
// to the database without inspecting error kinds.
type Cache struct {
	client *redis.Client
}

// NewCache creates a cache backed by the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached value for the key, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores the value under the key with the given time to live.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
