// FilePath: internal/assetservice/assetservice.warehouse.go
package assetservice

import (
	"context"
	"time"

	"github.com/itsatony/struccy"
	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
	"github.com/voltwatch/facilityhub/internal/pagination"
)

// WarehouseService handles warehouse-related business logic
type WarehouseService interface {
	CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error
	GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error)
	GetWarehouseDetail(ctx context.Context, id string) (*models.WarehouseDetail, error)
	UpdateWarehouse(ctx context.Context, warehouse *models.Warehouse) error
	DeleteWarehouse(ctx context.Context, id string) error
	ListWarehousesByOwner(ctx context.Context, ownerID string, page, pageSize int) (pagination.Page[*models.Warehouse], error)
	ListWarehouseDetailsByOwner(ctx context.Context, ownerID string) ([]*models.WarehouseDetail, error)
	AttachChildren(ctx context.Context, id string, roomIDs, gridIDs, dgsetIDs []string) (*models.Warehouse, error)
	RoomsInUse(ctx context.Context, ownerID string) ([]string, error)
}

// CreateWarehouse creates a new warehouse with proper validation and
// initialization. A caller-supplied id is kept; duplicates surface as a
// conflict from the store's unique constraint.
func (s *AssetService) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	if warehouse.Name == "" {
		return errors.NewValidationError("warehouse name is required", nil).WithDetails("name")
	}
	if err := validateDimensions(warehouse.Dimensions); err != nil {
		return err
	}
	if warehouse.CoolingUnits < 0 {
		return errors.NewValidationError("cooling_units must not be negative", nil).WithDetails("cooling_units")
	}
	if warehouse.SensorCount < 0 {
		return errors.NewValidationError("sensor_count must not be negative", nil).WithDetails("sensor_count")
	}
	if warehouse.OwnerID == "" {
		return errors.NewValidationError("owner_id is required", nil).WithDetails("owner_id")
	}

	// Generate new ID if not provided
	if warehouse.ID == "" {
		warehouse.ID = nuts.NID("wh", 12)
	}

	now := time.Now()
	warehouse.CreatedAt = now
	warehouse.UpdatedAt = now
	if warehouse.RoomIDs == nil {
		warehouse.RoomIDs = []string{}
	}
	if warehouse.GridIDs == nil {
		warehouse.GridIDs = []string{}
	}
	if warehouse.DGSetIDs == nil {
		warehouse.DGSetIDs = []string{}
	}

	nuts.L.Infof("[WarehouseService] Creating new warehouse: %s (%s)", warehouse.Name, warehouse.ID)
	return s.Warehouses.Create(ctx, warehouse)
}

func validateDimensions(d models.Dimensions) error {
	if d.Length <= 0 {
		return errors.NewValidationError("dimensions.length must be positive", nil).WithDetails("dimensions.length")
	}
	if d.Width <= 0 {
		return errors.NewValidationError("dimensions.width must be positive", nil).WithDetails("dimensions.width")
	}
	if d.Height <= 0 {
		return errors.NewValidationError("dimensions.height must be positive", nil).WithDetails("dimensions.height")
	}
	return nil
}

// GetWarehouse retrieves the raw warehouse record, child-id arrays included.
func (s *AssetService) GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	return s.Warehouses.Get(ctx, id)
}

// GetWarehouseDetail retrieves a warehouse with its children resolved into
// detail objects, consulting the redis cache first.
func (s *AssetService) GetWarehouseDetail(ctx context.Context, id string) (*models.WarehouseDetail, error) {
	if s.Cache != nil {
		if detail := s.Cache.Get(ctx, id); detail != nil {
			return detail, nil
		}
	}

	warehouse, err := s.Warehouses.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail, err := s.Composer.ComposeWarehouse(ctx, warehouse)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, detail)
	}
	return detail, nil
}

// UpdateWarehouse updates an existing warehouse with role-based access control
func (s *AssetService) UpdateWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	existing, err := s.Warehouses.Get(ctx, warehouse.ID)
	if err != nil {
		return err
	}

	roles := GetUserRoles(ctx)

	// Merge incoming fields into the stored record based on role access
	updatedFields, _, err := struccy.UpdateStructFields(existing, warehouse, roles, true, true)
	if err != nil {
		return errors.NewAuthorizationError("unauthorized field update", err)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[WarehouseService] Updating warehouse %s, fields changed: %v", warehouse.ID, updatedFields)
	if err := s.Warehouses.Update(ctx, existing); err != nil {
		return err
	}
	s.invalidateDetail(ctx, warehouse.ID)
	return nil
}

// DeleteWarehouse removes the warehouse record. Children stay in place and
// keep any stale warehouse backreference; see cleanup.Service.
func (s *AssetService) DeleteWarehouse(ctx context.Context, id string) error {
	if _, err := s.Warehouses.Get(ctx, id); err != nil {
		return err
	}

	nuts.L.Infof("[WarehouseService] Deleting warehouse: %s", id)
	if err := s.Cleanup.DeleteWarehouse(ctx, id); err != nil {
		return err
	}
	s.invalidateDetail(ctx, id)
	return nil
}

// ListWarehousesByOwner retrieves one page of an owner's warehouses. Pages
// are 0-based; a page at or past the end degrades to an empty page.
func (s *AssetService) ListWarehousesByOwner(ctx context.Context, ownerID string, page, pageSize int) (pagination.Page[*models.Warehouse], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	totalElements, err := s.Warehouses.CountByOwner(ctx, ownerID)
	if err != nil {
		return pagination.Page[*models.Warehouse]{}, err
	}

	if !pagination.InRange(page, totalElements, pageSize) {
		return pagination.EmptyPage[*models.Warehouse](totalElements, pageSize), nil
	}

	window := pagination.WindowFor(page, pageSize)
	warehouses, err := s.Warehouses.ListByOwner(ctx, ownerID, window.Offset, window.Limit)
	if err != nil {
		return pagination.Page[*models.Warehouse]{}, err
	}

	return pagination.NewPage(warehouses, totalElements, page, pageSize), nil
}

// ListWarehouseDetailsByOwner composes every warehouse of an owner. A
// warehouse whose composition fails is dropped with a warning.
func (s *AssetService) ListWarehouseDetailsByOwner(ctx context.Context, ownerID string) ([]*models.WarehouseDetail, error) {
	warehouses, err := s.Warehouses.ListAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.Composer.ComposeWarehouseList(ctx, warehouses), nil
}

// AttachChildren unions child ids into the warehouse's id arrays and returns
// the updated record. Ids are not checked against the child collections; a
// reference to a not-yet-created or deleted child is tolerated.
func (s *AssetService) AttachChildren(ctx context.Context, id string, roomIDs, gridIDs, dgsetIDs []string) (*models.Warehouse, error) {
	if len(roomIDs) == 0 && len(gridIDs) == 0 && len(dgsetIDs) == 0 {
		return nil, errors.NewValidationError("no child ids given", nil)
	}

	if err := s.Warehouses.AppendChildIDs(ctx, id, roomIDs, gridIDs, dgsetIDs); err != nil {
		return nil, err
	}
	s.invalidateDetail(ctx, id)

	nuts.L.Infof("[WarehouseService] Attached %d rooms, %d grids, %d dgsets to warehouse %s",
		len(roomIDs), len(gridIDs), len(dgsetIDs), id)
	return s.Warehouses.Get(ctx, id)
}

// RoomsInUse collects every room id referenced by the owner's warehouses.
func (s *AssetService) RoomsInUse(ctx context.Context, ownerID string) ([]string, error) {
	warehouses, err := s.Warehouses.ListAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	roomIDs := []string{}
	for _, warehouse := range warehouses {
		for _, roomID := range warehouse.RoomIDs {
			if !seen[roomID] {
				seen[roomID] = true
				roomIDs = append(roomIDs, roomID)
			}
		}
	}
	return roomIDs, nil
}
