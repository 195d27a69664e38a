package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"havenmart/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const catalogListKey = "catalog:list"

// CatalogCache caches the property list in Redis. A nil client turns every
// call into a no-op, so the service runs fine without Redis.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetList(ctx context.Context) ([]*queries.PropertyView, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, catalogListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("catalog cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var views []*queries.PropertyView
	if err := json.Unmarshal(payload, &views); err != nil {
		slog.Warn("catalog cache holds invalid payload, dropping it", "error", err.Error())
		c.InvalidateList(ctx)
		return nil, false
	}
	return views, true
}

func (c *CatalogCache) SetList(ctx context.Context, views []*queries.PropertyView) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(views)
	if err != nil {
		slog.Warn("failed to marshal catalog for cache", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, catalogListKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err.Error())
	}
}

func (c *CatalogCache) InvalidateList(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, catalogListKey).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}
