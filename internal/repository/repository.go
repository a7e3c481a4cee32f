// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/models"
)

// WarehouseRepository defines the interface for warehouse data operations.
// ListByOwner applies a stable ordering so sequential page fetches neither
// skip nor duplicate records against a static dataset.
type WarehouseRepository interface {
	database.Repository
	Create(ctx context.Context, warehouse *models.Warehouse) error
	Get(ctx context.Context, id string) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Warehouse, error)
	ListAllByOwner(ctx context.Context, ownerID string) ([]*models.Warehouse, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	AppendChildIDs(ctx context.Context, id string, roomIDs, gridIDs, dgsetIDs []string) error
	IDsReferencingChild(ctx context.Context, childID string) ([]string, error)
}

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	database.Repository
	Create(ctx context.Context, room *models.Room) error
	Get(ctx context.Context, id string) (*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Room, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	SetWarehouseID(ctx context.Context, id, warehouseID string) error
}

// GridRepository defines the interface for utility-grid data operations
type GridRepository interface {
	database.Repository
	Create(ctx context.Context, grid *models.Grid) error
	Get(ctx context.Context, id string) (*models.Grid, error)
	Update(ctx context.Context, grid *models.Grid) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*models.Grid, error)
}

// DGSetRepository defines the interface for generator-set data operations
type DGSetRepository interface {
	database.Repository
	Create(ctx context.Context, dgset *models.DGSet) error
	Get(ctx context.Context, id string) (*models.DGSet, error)
	Update(ctx context.Context, dgset *models.DGSet) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*models.DGSet, error)
	SetWarehouseID(ctx context.Context, id, warehouseID string) error
}

// PowerSwitchRepository holds the single current power-source record.
// Save overwrites the current state; there is no history.
type PowerSwitchRepository interface {
	database.Repository
	Current(ctx context.Context) (*models.PowerSwitch, error)
	Save(ctx context.Context, sw *models.PowerSwitch) error
}
