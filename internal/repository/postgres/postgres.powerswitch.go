// FilePath: internal/repository/postgres/postgres.powerswitch.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

type PowerSwitchRepo struct {
	PostgresBaseRepo
}

func NewPowerSwitchRepository(db database.DB) *PowerSwitchRepo {
	repo := &PostgresBaseRepo{db: db}
	return &PowerSwitchRepo{PostgresBaseRepo: *repo}
}

// Current returns the most recent power-source record.
func (r *PowerSwitchRepo) Current(ctx context.Context) (*models.PowerSwitch, error) {
	sw := &models.PowerSwitch{}
	query := `SELECT * FROM power_switches ORDER BY updated_at DESC LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, sw, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("no power switch recorded", err)
		}
		return nil, storeError("failed to get power switch", err)
	}
	return sw, nil
}

// Save upserts the switch record. Each transition overwrites the previous
// state; no history is kept.
func (r *PowerSwitchRepo) Save(ctx context.Context, sw *models.PowerSwitch) error {
	query := `
		INSERT INTO power_switches (id, status, grid_id, dgset_id, updated_at)
		VALUES (:id, :status, :grid_id, :dgset_id, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			grid_id = EXCLUDED.grid_id,
			dgset_id = EXCLUDED.dgset_id,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, sw)
	if err != nil {
		return storeError("failed to save power switch", err)
	}
	return nil
}
