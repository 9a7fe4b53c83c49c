// Package trackcache implements the tracking snapshot cache on Redis.
// Snapshots are stored as JSON under a per-order-code key with a TTL,
// so a crashed invalidation at worst serves stale data until expiry.
package trackcache

import (
	"context"
	"encoding/json"
	"time"

	"couriernet/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// DefaultTTL bounds snapshot staleness when an invalidation is lost.
const DefaultTTL = 5 * time.Minute

// Cache is the Redis implementation of ports.TrackingCache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a tracking cache over the given client. A zero or
// negative ttl falls back to DefaultTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot for an order code. A miss returns
// (nil, nil).
func (c *Cache) Get(ctx context.Context, orderCode string) (*ports.TrackingSnapshot, error) {
	raw, err := c.client.Get(ctx, keyPrefix+orderCode).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get tracking snapshot")
	}

	var snapshot ports.TrackingSnapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "decode tracking snapshot")
	}
	return &snapshot, nil
}

// Set stores a snapshot under its order code with the configured TTL.
func (c *Cache) Set(ctx context.Context, snapshot *ports.TrackingSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "encode tracking snapshot")
	}

	if err = c.client.Set(ctx, keyPrefix+snapshot.OrderCode, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "set tracking snapshot")
	}
	return nil
}

// Invalidate drops the snapshot after a status change.
func (c *Cache) Invalidate(ctx context.Context, orderCode string) error {
	if err := c.client.Del(ctx, keyPrefix+orderCode).Err(); err != nil {
		return errors.Wrap(err, "invalidate tracking snapshot")
	}
	return nil
}
