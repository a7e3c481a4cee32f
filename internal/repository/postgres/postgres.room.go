// FilePath: internal/repository/postgres/postgres.room.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

type RoomRepo struct {
	PostgresBaseRepo
}

func NewRoomRepository(db database.DB) *RoomRepo {
	repo := &PostgresBaseRepo{db: db}
	return &RoomRepo{PostgresBaseRepo: *repo}
}

func (r *RoomRepo) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (
			id, room_number, room_name, racks, power_point, slot,
			level_slots, owner_id, warehouse_id, created_at, updated_at
		) VALUES (
			:id, :room_number, :room_name, :racks, :power_point, :slot,
			:level_slots, :owner_id, :warehouse_id, :created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, room)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("room already exists", err)
		}
		return storeError("failed to create room", err)
	}
	return nil
}

func (r *RoomRepo) Get(ctx context.Context, id string) (*models.Room, error) {
	room := &models.Room{}
	query := `SELECT * FROM rooms WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, room, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("room not found", err)
		}
		return nil, storeError("failed to get room", err)
	}
	return room, nil
}

func (r *RoomRepo) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms SET
			room_number = :room_number,
			room_name = :room_name,
			racks = :racks,
			power_point = :power_point,
			slot = :slot,
			level_slots = :level_slots,
			warehouse_id = :warehouse_id,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, room)
	if err != nil {
		return storeError("failed to update room", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("room not found", nil)
	}

	return nil
}

// Delete removes the room only. Any warehouse still listing this room's id
// keeps the stale reference; the resolver treats it as a hole.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return storeError("failed to delete room", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("room not found", nil)
	}

	return nil
}

func (r *RoomRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Room, error) {
	rooms := []*models.Room{}
	query := `SELECT * FROM rooms WHERE owner_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`

	err := r.db.GetDB().SelectContext(ctx, &rooms, query, ownerID, limit, offset)
	if err != nil {
		return nil, storeError("failed to list rooms", err)
	}

	return rooms, nil
}

func (r *RoomRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM rooms WHERE owner_id = $1`

	err := r.db.GetDB().GetContext(ctx, &count, query, ownerID)
	if err != nil {
		return 0, storeError("failed to count rooms", err)
	}

	return count, nil
}

func (r *RoomRepo) SetWarehouseID(ctx context.Context, id, warehouseID string) error {
	query := `UPDATE rooms SET warehouse_id = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.GetDB().ExecContext(ctx, query, warehouseID, id)
	if err != nil {
		return storeError("failed to set room warehouse", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("room not found", nil)
	}

	return nil
}
