// FilePath: internal/repository/postgres/postgres.dgset.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

type DGSetRepo struct {
	PostgresBaseRepo
}

func NewDGSetRepository(db database.DB) *DGSetRepo {
	repo := &PostgresBaseRepo{db: db}
	return &DGSetRepo{PostgresBaseRepo: *repo}
}

func (r *DGSetRepo) Create(ctx context.Context, dgset *models.DGSet) error {
	query := `
		INSERT INTO dgsets (
			id, name, output_voltage, max_output_current, fuel_type,
			fuel_capacity, output_connector_type, motor_type,
			warehouse_id, created_at, updated_at
		) VALUES (
			:id, :name, :output_voltage, :max_output_current, :fuel_type,
			:fuel_capacity, :output_connector_type, :motor_type,
			:warehouse_id, :created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, dgset)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("dgset already exists", err)
		}
		return storeError("failed to create dgset", err)
	}
	return nil
}

func (r *DGSetRepo) Get(ctx context.Context, id string) (*models.DGSet, error) {
	dgset := &models.DGSet{}
	query := `SELECT * FROM dgsets WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, dgset, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("dgset not found", err)
		}
		return nil, storeError("failed to get dgset", err)
	}
	return dgset, nil
}

func (r *DGSetRepo) Update(ctx context.Context, dgset *models.DGSet) error {
	query := `
		UPDATE dgsets SET
			name = :name,
			output_voltage = :output_voltage,
			max_output_current = :max_output_current,
			fuel_type = :fuel_type,
			fuel_capacity = :fuel_capacity,
			output_connector_type = :output_connector_type,
			motor_type = :motor_type,
			warehouse_id = :warehouse_id,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, dgset)
	if err != nil {
		return storeError("failed to update dgset", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("dgset not found", nil)
	}

	return nil
}

func (r *DGSetRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM dgsets WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return storeError("failed to delete dgset", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("dgset not found", nil)
	}

	return nil
}

func (r *DGSetRepo) List(ctx context.Context, offset, limit int) ([]*models.DGSet, error) {
	dgsets := []*models.DGSet{}
	query := `SELECT * FROM dgsets ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &dgsets, query, limit, offset)
	if err != nil {
		return nil, storeError("failed to list dgsets", err)
	}

	return dgsets, nil
}

func (r *DGSetRepo) SetWarehouseID(ctx context.Context, id, warehouseID string) error {
	query := `UPDATE dgsets SET warehouse_id = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.GetDB().ExecContext(ctx, query, warehouseID, id)
	if err != nil {
		return storeError("failed to set dgset warehouse", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("dgset not found", nil)
	}

	return nil
}
