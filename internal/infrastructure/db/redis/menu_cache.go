package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusdining/campus-dining-api/internal/api/metrics"
	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

const menuListTTL = time.Minute

// MenuCache caches public menu listings in Redis.
// Key format: menu:list:<all|available>
type MenuCache struct {
	client *redis.Client
}

// NewMenuCache creates a MenuCache wrapping the given Redis client.
func NewMenuCache(client *redis.Client) *MenuCache {
	return &MenuCache{client: client}
}

// GetList returns a cached listing when present. A missing key is a miss,
// not an error.
func (c *MenuCache) GetList(ctx context.Context, availableOnly bool) ([]domain.MenuItem, bool, error) {
	payload, err := c.client.Get(ctx, c.key(availableOnly)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.MenuCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("menu cache get: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		// stale or corrupt entry: treat as a miss
		metrics.MenuCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.MenuCacheTotal.WithLabelValues("hit").Inc()
	return items, true, nil
}

// SetList stores a listing with a short TTL. Mutations invalidate eagerly;
// the TTL only bounds staleness when an invalidation is lost.
func (c *MenuCache) SetList(ctx context.Context, availableOnly bool, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("menu cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(availableOnly), payload, menuListTTL).Err()
}

// Invalidate drops both listing variants.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key(false), c.key(true)).Err()
}

func (c *MenuCache) key(availableOnly bool) string {
	if availableOnly {
		return "menu:list:available"
	}
	return "menu:list:all"
}
