// FilePath: internal/repository/postgres/postgres.warehouse.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

type WarehouseRepo struct {
	PostgresBaseRepo
}

func NewWarehouseRepository(db database.DB) *WarehouseRepo {
	repo := &PostgresBaseRepo{db: db}
	return &WarehouseRepo{PostgresBaseRepo: *repo}
}

// Create inserts a new warehouse. The id column carries a UNIQUE constraint,
// so a duplicate caller-supplied id surfaces as a conflict without any
// check-then-insert race.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouses (
			id, name, latitude, longitude, dimensions,
			energy_resource, cooling_units, sensor_count,
			owner_id, owner_email, room_ids, grid_ids, dgset_ids,
			created_at, updated_at
		) VALUES (
			:id, :name, :latitude, :longitude, :dimensions,
			:energy_resource, :cooling_units, :sensor_count,
			:owner_id, :owner_email, :room_ids, :grid_ids, :dgset_ids,
			:created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, warehouse)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("warehouse already exists", err)
		}
		return storeError("failed to create warehouse", err)
	}
	return nil
}

func (r *WarehouseRepo) Get(ctx context.Context, id string) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `SELECT * FROM warehouses WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, warehouse, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("warehouse not found", err)
		}
		return nil, storeError("failed to get warehouse", err)
	}
	return warehouse, nil
}

func (r *WarehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		UPDATE warehouses SET
			name = :name,
			latitude = :latitude,
			longitude = :longitude,
			dimensions = :dimensions,
			energy_resource = :energy_resource,
			cooling_units = :cooling_units,
			sensor_count = :sensor_count,
			room_ids = :room_ids,
			grid_ids = :grid_ids,
			dgset_ids = :dgset_ids,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, warehouse)
	if err != nil {
		return storeError("failed to update warehouse", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("warehouse not found", nil)
	}

	return nil
}

// Delete removes the warehouse record only. Children and their ids in other
// warehouses are left untouched; see cleanup.Service for the policy.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM warehouses WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return storeError("failed to delete warehouse", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("warehouse not found", nil)
	}

	return nil
}

// ListByOwner returns one page of an owner's warehouses. The ordering key is
// (created_at DESC, id) so pages stay stable across sequential fetches.
func (r *WarehouseRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Warehouse, error) {
	warehouses := []*models.Warehouse{}
	query := `SELECT * FROM warehouses WHERE owner_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`

	err := r.db.GetDB().SelectContext(ctx, &warehouses, query, ownerID, limit, offset)
	if err != nil {
		return nil, storeError("failed to list warehouses", err)
	}

	return warehouses, nil
}

func (r *WarehouseRepo) ListAllByOwner(ctx context.Context, ownerID string) ([]*models.Warehouse, error) {
	warehouses := []*models.Warehouse{}
	query := `SELECT * FROM warehouses WHERE owner_id = $1 ORDER BY created_at DESC, id`

	err := r.db.GetDB().SelectContext(ctx, &warehouses, query, ownerID)
	if err != nil {
		return nil, storeError("failed to list warehouses", err)
	}

	return warehouses, nil
}

func (r *WarehouseRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM warehouses WHERE owner_id = $1`

	err := r.db.GetDB().GetContext(ctx, &count, query, ownerID)
	if err != nil {
		return 0, storeError("failed to count warehouses", err)
	}

	return count, nil
}

// IDsReferencingChild returns the ids of every warehouse whose child arrays
// contain the given id. Used to invalidate cached details on child writes.
func (r *WarehouseRepo) IDsReferencingChild(ctx context.Context, childID string) ([]string, error) {
	ids := []string{}
	query := `
		SELECT id FROM warehouses
		WHERE $1 = ANY(room_ids) OR $1 = ANY(grid_ids) OR $1 = ANY(dgset_ids)`

	err := r.db.GetDB().SelectContext(ctx, &ids, query, childID)
	if err != nil {
		return nil, storeError("failed to find referencing warehouses", err)
	}

	return ids, nil
}

// AppendChildIDs unions the given ids into the warehouse's child arrays.
// Already-present ids are not duplicated.
func (r *WarehouseRepo) AppendChildIDs(ctx context.Context, id string, roomIDs, gridIDs, dgsetIDs []string) error {
	query := `
		UPDATE warehouses SET
			room_ids = (SELECT ARRAY(SELECT DISTINCT unnest(room_ids || $2::text[]))),
			grid_ids = (SELECT ARRAY(SELECT DISTINCT unnest(grid_ids || $3::text[]))),
			dgset_ids = (SELECT ARRAY(SELECT DISTINCT unnest(dgset_ids || $4::text[]))),
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id,
		pq.StringArray(roomIDs), pq.StringArray(gridIDs), pq.StringArray(dgsetIDs))
	if err != nil {
		return storeError("failed to attach child ids", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("warehouse not found", nil)
	}

	return nil
}
