// FilePath: internal/assetservice/assetservice.dgset.go
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

// CreateDGSet creates a new generator-set record
func (s *AssetService) CreateDGSet(ctx context.Context, dgset *models.DGSet) error {
	if dgset.Name == "" {
		return errors.NewValidationError("dgset name is required", nil).WithDetails("name")
	}
	if dgset.FuelCapacity < 0 {
		return errors.NewValidationError("fuel_capacity must not be negative", nil).WithDetails("fuel_capacity")
	}

	if dgset.ID == "" {
		dgset.ID = nuts.NID("dg", 12)
	}

	now := time.Now()
	dgset.CreatedAt = now
	dgset.UpdatedAt = now

	nuts.L.Infof("[DGSetService] Creating new dgset: %s (%s)", dgset.Name, dgset.ID)
	return s.DGSets.Create(ctx, dgset)
}

func (s *AssetService) GetDGSet(ctx context.Context, id string) (*models.DGSet, error) {
	return s.DGSets.Get(ctx, id)
}

// UpdateDGSet updates an existing dgset with role-based access control
func (s *AssetService) UpdateDGSet(ctx context.Context, dgset *models.DGSet) error {
	existing, err := s.DGSets.Get(ctx, dgset.ID)
	if err != nil {
		return err
	}

	roles := GetUserRoles(ctx)
	updatedFields, _, err := struccy.UpdateStructFields(existing, dgset, roles, true, true)
	if err != nil {
		return errors.NewAuthorizationError("unauthorized field update", err)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[DGSetService] Updating dgset %s, fields changed: %v", dgset.ID, updatedFields)
	if err := s.DGSets.Update(ctx, existing); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, dgset.ID)
	return nil
}

// DeleteDGSet removes the dgset record. Warehouses still referencing its id
// keep the stale entry.
func (s *AssetService) DeleteDGSet(ctx context.Context, id string) error {
	if _, err := s.DGSets.Get(ctx, id); err != nil {
		return err
	}

	nuts.L.Infof("[DGSetService] Deleting dgset: %s", id)
	if err := s.Cleanup.DeleteDGSet(ctx, id); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, id)
	return nil
}

// ListDGSets retrieves one page of dgsets
func (s *AssetService) ListDGSets(ctx context.Context, page, pageSize int) ([]*models.DGSet, error) {
	page, pageSize = pagination.Normalize(page, pageSize)
	window := pagination.WindowFor(page, pageSize)
	return s.DGSets.List(ctx, window.Offset, window.Limit)
}

// AssignDGSetsToWarehouse rewrites the warehouse backreference of the given
// dgsets. A missing dgset is skipped with a warning.
func (s *AssetService) AssignDGSetsToWarehouse(ctx context.Context, warehouseID string, dgsetIDs []string) error {
	if warehouseID == "" || len(dgsetIDs) == 0 {
		return errors.NewValidationError("warehouse id and dgset ids are required", nil)
	}

	for _, dgsetID := range dgsetIDs {
		if err := s.DGSets.SetWarehouseID(ctx, dgsetID, warehouseID); err != nil {
			if errors.IsNotFound(err) {
				nuts.L.Warnf("[DGSetService] DGSet not found for id: %s", dgsetID)
				continue
			}
			return err
		}
	}
	s.invalidateDetail(ctx, warehouseID)
	return nil
}
