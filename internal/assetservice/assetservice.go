// FilePath: internal/assetservice/assetservice.go
package assetservice

import (
	"context"

	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/cache"
	"github.com/voltwatch/facilityhub/internal/cleanup"
	"github.com/voltwatch/facilityhub/internal/compose"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/repository"
)

// AssetService contains all repositories and service-wide dependencies
type AssetService struct {
	Warehouses    repository.WarehouseRepository
	Rooms         repository.RoomRepository
	Grids         repository.GridRepository
	DGSets        repository.DGSetRepository
	PowerSwitches repository.PowerSwitchRepository
	Composer      *compose.Composer
	Cache         *cache.DetailCache
	Cleanup       *cleanup.Service
}

// New creates a new AssetService instance. cache may be nil; detail views
// then always hit the store.
func New(
	warehouses repository.WarehouseRepository,
	rooms repository.RoomRepository,
	grids repository.GridRepository,
	dgsets repository.DGSetRepository,
	powerSwitches repository.PowerSwitchRepository,
	detailCache *cache.DetailCache,
) *AssetService {
	resolver := compose.NewResolver(rooms, grids, dgsets)
	svc := &AssetService{
		Warehouses:    warehouses,
		Rooms:         rooms,
		Grids:         grids,
		DGSets:        dgsets,
		PowerSwitches: powerSwitches,
		Composer:      compose.NewComposer(resolver),
		Cache:         detailCache,
	}
	svc.Cleanup = cleanup.New(warehouses, rooms, grids, dgsets)
	return svc
}

// Validate checks if all required repositories are initialized
func (s *AssetService) Validate() error {
	if s.Warehouses == nil {
		return ErrMissingRepository("warehouses")
	}
	if s.Rooms == nil {
		return ErrMissingRepository("rooms")
	}
	if s.Grids == nil {
		return ErrMissingRepository("grids")
	}
	if s.DGSets == nil {
		return ErrMissingRepository("dgsets")
	}
	if s.PowerSwitches == nil {
		return ErrMissingRepository("powerSwitches")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// GetUserRoles retrieves user roles from context. The identity middleware
// stores them; callers outside a request default to guest.
func GetUserRoles(ctx context.Context) []string {
	if roles := ctx.Value("user_roles"); roles != nil {
		if r, ok := roles.([]string); ok {
			return r
		}
	}
	return []string{"guest"}
}

func (s *AssetService) invalidateDetail(ctx context.Context, warehouseIDs ...string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Invalidate(ctx, warehouseIDs...)
}

// invalidateDetailForChild drops the cached detail of every warehouse whose
// child arrays reference the given id. Children can be attached to a
// warehouse's arrays without a warehouse_id backreference, so the reverse
// lookup is the only reliable way to find affected details.
func (s *AssetService) invalidateDetailForChild(ctx context.Context, childID string) {
	if s.Cache == nil {
		return
	}
	warehouseIDs, err := s.Warehouses.IDsReferencingChild(ctx, childID)
	if err != nil {
		nuts.L.Warnf("[AssetService] Failed to find warehouses referencing %s: %v", childID, err)
		return
	}
	s.Cache.Invalidate(ctx, warehouseIDs...)
}
