// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/config"
	"github.com/voltwatch/facilityhub/internal/models"
)

const detailKeyPrefix = "facilityhub:warehouse:detail:"

// DetailCache keeps composed warehouse details in redis for the TTL from
// config. It is strictly best-effort: a cache failure is logged and the
// caller falls through to the store.
type DetailCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDetailCache(cfg config.RedisConfig) *DetailCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &DetailCache{client: client, ttl: cfg.CacheTTL}
}

// NewDetailCacheWithClient wires an existing client, used by tests.
func NewDetailCacheWithClient(client *redis.Client, ttl time.Duration) *DetailCache {
	return &DetailCache{client: client, ttl: ttl}
}

func (c *DetailCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *DetailCache) Close() error {
	return c.client.Close()
}

// Get returns the cached detail for a warehouse id, or nil on miss.
func (c *DetailCache) Get(ctx context.Context, warehouseID string) *models.WarehouseDetail {
	raw, err := c.client.Get(ctx, detailKeyPrefix+warehouseID).Bytes()
	if err != nil {
		if err != redis.Nil {
			nuts.L.Warnf("[DetailCache] Get failed for %s: %v", warehouseID, err)
		}
		return nil
	}

	detail := &models.WarehouseDetail{}
	if err := json.Unmarshal(raw, detail); err != nil {
		nuts.L.Warnf("[DetailCache] Corrupt cache entry for %s: %v", warehouseID, err)
		return nil
	}
	return detail
}

// Set stores a composed detail under the warehouse id.
func (c *DetailCache) Set(ctx context.Context, detail *models.WarehouseDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		nuts.L.Warnf("[DetailCache] Marshal failed for %s: %v", detail.ID, err)
		return
	}
	if err := c.client.Set(ctx, detailKeyPrefix+detail.ID, raw, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[DetailCache] Set failed for %s: %v", detail.ID, err)
	}
}

// Invalidate drops the cached detail for the given warehouse ids.
func (c *DetailCache) Invalidate(ctx context.Context, warehouseIDs ...string) {
	if len(warehouseIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(warehouseIDs))
	for _, id := range warehouseIDs {
		if id == "" {
			continue
		}
		keys = append(keys, detailKeyPrefix+id)
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		nuts.L.Warnf("[DetailCache] Invalidate failed: %v", err)
	}
}
