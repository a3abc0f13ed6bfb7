package weather

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Cache stores live snapshots between requests so repeated lookups for the
// same city within the TTL skip the upstream round trip. Only live data is
// cached; fallbacks are never stored. Cache failures are non-fatal.
type Cache interface {
	Get(ctx context.Context, city string) (*Snapshot, bool)
	Set(ctx context.Context, city string, snap *Snapshot) error
}

// RedisCache implements Cache using Redis with a fixed TTL per entry.
type RedisCache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithTTL sets the expiration for cached snapshots.
func WithTTL(ttl time.Duration) RedisOption {
	return func(c *RedisCache) { c.ttl = ttl }
}

// WithPrefix sets the key prefix for cached snapshots.
func WithPrefix(prefix string) RedisOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

// NewRedisCache creates a cache talking to the given address.
func NewRedisCache(address string, opts ...RedisOption) *RedisCache {
	return NewRedisCacheFromClient(backend.NewClient(&backend.Options{Addr: address}), opts...)
}

// NewRedisCacheFromClient creates a cache from an existing client.
func NewRedisCacheFromClient(client *backend.Client, opts ...RedisOption) *RedisCache {
	c := &RedisCache{
		client: client,
		prefix: "tripweaver:weather:",
		ttl:    10 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) key(city string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(city))
}

// Get returns the cached snapshot for the city, if present and unexpired.
func (c *RedisCache) Get(ctx context.Context, city string) (*Snapshot, bool) {
	data, err := c.client.Get(ctx, c.key(city)).Bytes()
	if err != nil {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

// Set stores the snapshot under the city key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, city string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(city), data, c.ttl).Err()
}
