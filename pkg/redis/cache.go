package redis

import (
	"context"
	"time"
)

// Cache provides namespaced JSON caching on top of a Client.
type Cache struct {
	client *Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a cache whose keys are stored under the given prefix.
func NewCache(client *Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Cache) key(key string) string {
	return c.prefix + ":" + key
}

// Get loads the cached value for key into dest. Returns ErrCacheMiss
// when the key is not present.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	return c.client.GetJSON(ctx, c.key(key), dest)
}

// Put stores value under key with the cache TTL.
func (c *Cache) Put(ctx context.Context, key string, value any) error {
	return c.client.SetJSON(ctx, c.key(key), value, c.ttl)
}

// Evict removes the cached value for key.
func (c *Cache) Evict(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.key(key))
}
