// FilePath: internal/compose/composer.go
package compose

import (
	"context"
	"sync"

	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

// Composer assembles warehouse detail views by replacing the stored child-id
// arrays with resolved detail objects. The raw id arrays never reach callers
// of a detail view.
type Composer struct {
	resolver *Resolver
}

func NewComposer(resolver *Resolver) *Composer {
	return &Composer{resolver: resolver}
}

// ComposeWarehouse resolves the three child kinds of one warehouse
// concurrently. If every child array is empty the store is not touched. A
// failed resolve of any kind fails the whole composition; no partial
// warehouse object is returned.
func (c *Composer) ComposeWarehouse(ctx context.Context, warehouse *models.Warehouse) (*models.WarehouseDetail, error) {
	detail := models.NewWarehouseDetail(warehouse)

	if len(warehouse.RoomIDs) == 0 && len(warehouse.GridIDs) == 0 && len(warehouse.DGSetIDs) == 0 {
		return detail, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		rooms, err := c.resolver.ResolveRooms(ctx, warehouse.RoomIDs)
		if err != nil {
			fail(err)
			return
		}
		detail.Rooms = rooms
	}()
	go func() {
		defer wg.Done()
		grids, err := c.resolver.ResolveGrids(ctx, warehouse.GridIDs)
		if err != nil {
			fail(err)
			return
		}
		detail.Grids = grids
	}()
	go func() {
		defer wg.Done()
		dgsets, err := c.resolver.ResolveDGSets(ctx, warehouse.DGSetIDs)
		if err != nil {
			fail(err)
			return
		}
		detail.DGSets = dgsets
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, errors.NewDatabaseError("failed to compose warehouse "+warehouse.ID, firstErr)
	}
	return detail, nil
}

// ComposeWarehouseList composes every warehouse concurrently. A warehouse
// whose composition fails is dropped from the result with a warning; failures
// never cross warehouse boundaries.
func (c *Composer) ComposeWarehouseList(ctx context.Context, warehouses []*models.Warehouse) []*models.WarehouseDetail {
	results := make([]*models.WarehouseDetail, len(warehouses))

	var wg sync.WaitGroup
	for i, warehouse := range warehouses {
		wg.Add(1)
		go func(i int, warehouse *models.Warehouse) {
			defer wg.Done()
			detail, err := c.ComposeWarehouse(ctx, warehouse)
			if err != nil {
				nuts.L.Warnf("[Composer] Failed to compose warehouse %s: %v", warehouse.ID, err)
				return
			}
			results[i] = detail
		}(i, warehouse)
	}
	wg.Wait()

	details := make([]*models.WarehouseDetail, 0, len(results))
	for _, detail := range results {
		if detail != nil {
			details = append(details, detail)
		}
	}
	return details
}
