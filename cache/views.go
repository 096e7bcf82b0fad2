// Package cache signals staleness of rendered views to the frontend's
// page cache. Invalidation is fire-and-forget: failures are logged and
// never surfaced, at-least-once delivery is acceptable.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// View keys understood by the frontend cache.
const (
	ViewReservations = "views:account:reservations"
	ViewProfile      = "views:account:profile"
)

func ViewCabin(cabinID uint) string {
	return fmt.Sprintf("views:cabins:%d", cabinID)
}

func ViewReservationEdit(bookingID uint) string {
	return fmt.Sprintf("views:account:reservations:edit:%d", bookingID)
}

// ViewCache marks previously rendered views as stale.
type ViewCache interface {
	Invalidate(ctx context.Context, keys ...string)
}

// RedisViewCache drops cached views by deleting their keys.
type RedisViewCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisViewCache(client *redis.Client, log zerolog.Logger) *RedisViewCache {
	return &RedisViewCache{client: client, log: log}
}

func (c *RedisViewCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("view invalidation failed")
	}
}

// MemoryViewCache records invalidated keys. Used when Redis is not
// configured, and by the service tests to assert invalidation behavior.
type MemoryViewCache struct {
	mu   sync.Mutex
	keys []string
}

func NewMemoryViewCache() *MemoryViewCache {
	return &MemoryViewCache{}
}

func (c *MemoryViewCache) Invalidate(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, keys...)
}

// Keys returns the invalidated keys in call order.
func (c *MemoryViewCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
