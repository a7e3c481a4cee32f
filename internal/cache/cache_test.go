// FilePath: internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltwatch/facilityhub/internal/models"
)

func newTestCache(t *testing.T) (*DetailCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewDetailCacheWithClient(client, 5*time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func sampleDetail(id string) *models.WarehouseDetail {
	return &models.WarehouseDetail{
		ID:   id,
		Name: "Central Storage",
		Rooms: []*models.RoomDetail{
			{ID: "rm_1", RoomName: "Cold Aisle", Racks: 8},
		},
		Grids:  []*models.GridDetail{},
		DGSets: []*models.DGSetDetail{},
	}
}

func TestDetailCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, "wh_1"), "miss returns nil")

	c.Set(ctx, sampleDetail("wh_1"))

	got := c.Get(ctx, "wh_1")
	require.NotNil(t, got)
	assert.Equal(t, "wh_1", got.ID)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, "Cold Aisle", got.Rooms[0].RoomName)
}

func TestDetailCacheTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleDetail("wh_1"))
	require.NotNil(t, c.Get(ctx, "wh_1"))

	mr.FastForward(6 * time.Minute)
	assert.Nil(t, c.Get(ctx, "wh_1"), "entry expires after the TTL")
}

func TestDetailCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleDetail("wh_1"))
	c.Set(ctx, sampleDetail("wh_2"))

	c.Invalidate(ctx, "wh_1", "", "wh_missing")

	assert.Nil(t, c.Get(ctx, "wh_1"))
	assert.NotNil(t, c.Get(ctx, "wh_2"), "other entries survive invalidation")
}

func TestDetailCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(detailKeyPrefix+"wh_1", "not json"))
	assert.Nil(t, c.Get(ctx, "wh_1"), "corrupt entry degrades to a miss")
}

func TestDetailCacheServerGone(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleDetail("wh_1"))
	mr.Close()

	// Best-effort contract: a dead server is a miss, never an error or panic.
	assert.Nil(t, c.Get(ctx, "wh_1"))
	c.Set(ctx, sampleDetail("wh_2"))
	c.Invalidate(ctx, "wh_1")
}
