// FilePath: internal/repository/postgres/postgres.grid.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

type GridRepo struct {
	PostgresBaseRepo
}

func NewGridRepository(db database.DB) *GridRepo {
	repo := &PostgresBaseRepo{db: db}
	return &GridRepo{PostgresBaseRepo: *repo}
}

func (r *GridRepo) Create(ctx context.Context, grid *models.Grid) error {
	query := `
		INSERT INTO grids (
			id, name, output_voltage, max_output_current,
			output_connector_type, created_at, updated_at
		) VALUES (
			:id, :name, :output_voltage, :max_output_current,
			:output_connector_type, :created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, grid)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("grid already exists", err)
		}
		return storeError("failed to create grid", err)
	}
	return nil
}

func (r *GridRepo) Get(ctx context.Context, id string) (*models.Grid, error) {
	grid := &models.Grid{}
	query := `SELECT * FROM grids WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, grid, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("grid not found", err)
		}
		return nil, storeError("failed to get grid", err)
	}
	return grid, nil
}

func (r *GridRepo) Update(ctx context.Context, grid *models.Grid) error {
	query := `
		UPDATE grids SET
			name = :name,
			output_voltage = :output_voltage,
			max_output_current = :max_output_current,
			output_connector_type = :output_connector_type,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, grid)
	if err != nil {
		return storeError("failed to update grid", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("grid not found", nil)
	}

	return nil
}

func (r *GridRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM grids WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return storeError("failed to delete grid", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("grid not found", nil)
	}

	return nil
}

func (r *GridRepo) List(ctx context.Context, offset, limit int) ([]*models.Grid, error) {
	grids := []*models.Grid{}
	query := `SELECT * FROM grids ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &grids, query, limit, offset)
	if err != nil {
		return nil, storeError("failed to list grids", err)
	}

	return grids, nil
}
