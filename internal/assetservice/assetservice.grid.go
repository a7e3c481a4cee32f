// FilePath: internal/assetservice/assetservice.grid.go
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

// CreateGrid creates a new utility-grid record
func (s *AssetService) CreateGrid(ctx context.Context, grid *models.Grid) error {
	if grid.Name == "" {
		return errors.NewValidationError("grid name is required", nil).WithDetails("name")
	}

	if grid.ID == "" {
		grid.ID = nuts.NID("gd", 12)
	}

	now := time.Now()
	grid.CreatedAt = now
	grid.UpdatedAt = now

	nuts.L.Infof("[GridService] Creating new grid: %s (%s)", grid.Name, grid.ID)
	return s.Grids.Create(ctx, grid)
}

func (s *AssetService) GetGrid(ctx context.Context, id string) (*models.Grid, error) {
	return s.Grids.Get(ctx, id)
}

// UpdateGrid updates an existing grid with role-based access control
func (s *AssetService) UpdateGrid(ctx context.Context, grid *models.Grid) error {
	existing, err := s.Grids.Get(ctx, grid.ID)
	if err != nil {
		return err
	}

	roles := GetUserRoles(ctx)
	updatedFields, _, err := struccy.UpdateStructFields(existing, grid, roles, true, true)
	if err != nil {
		return errors.NewAuthorizationError("unauthorized field update", err)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[GridService] Updating grid %s, fields changed: %v", grid.ID, updatedFields)
	if err := s.Grids.Update(ctx, existing); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, grid.ID)
	return nil
}

func (s *AssetService) DeleteGrid(ctx context.Context, id string) error {
	nuts.L.Infof("[GridService] Deleting grid: %s", id)
	if err := s.Cleanup.DeleteGrid(ctx, id); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, id)
	return nil
}

// ListGrids retrieves one page of grids
func (s *AssetService) ListGrids(ctx context.Context, page, pageSize int) ([]*models.Grid, error) {
	page, pageSize = pagination.Normalize(page, pageSize)
	window := pagination.WindowFor(page, pageSize)
	return s.Grids.List(ctx, window.Offset, window.Limit)
}
