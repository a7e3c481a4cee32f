// FilePath: internal/assetservice/assetservice.room.go
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

// CreateRoom creates a new room with proper validation and initialization
func (s *AssetService) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.RoomName == "" {
		return errors.NewValidationError("room name is required", nil).WithDetails("room_name")
	}
	if room.Racks < 0 {
		return errors.NewValidationError("racks must not be negative", nil).WithDetails("racks")
	}
	if room.PowerPoint < 0 {
		return errors.NewValidationError("power_point must not be negative", nil).WithDetails("power_point")
	}
	if room.Slot < 0 {
		return errors.NewValidationError("slot must not be negative", nil).WithDetails("slot")
	}
	if room.OwnerID == "" {
		return errors.NewValidationError("owner_id is required", nil).WithDetails("owner_id")
	}

	if room.ID == "" {
		room.ID = nuts.NID("rm", 12)
	}
	if room.LevelSlots == nil {
		room.LevelSlots = models.LevelSlots{}
	}

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	nuts.L.Infof("[RoomService] Creating new room: %s (%s)", room.RoomName, room.ID)
	return s.Rooms.Create(ctx, room)
}

func (s *AssetService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.Rooms.Get(ctx, id)
}

// UpdateRoom updates an existing room with role-based access control
func (s *AssetService) UpdateRoom(ctx context.Context, room *models.Room) error {
	existing, err := s.Rooms.Get(ctx, room.ID)
	if err != nil {
		return err
	}

	roles := GetUserRoles(ctx)
	updatedFields, _, err := struccy.UpdateStructFields(existing, room, roles, true, true)
	if err != nil {
		return errors.NewAuthorizationError("unauthorized field update", err)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[RoomService] Updating room %s, fields changed: %v", room.ID, updatedFields)
	if err := s.Rooms.Update(ctx, existing); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, room.ID)
	return nil
}

// DeleteRoom removes the room record. Warehouses still referencing its id
// keep the stale entry; detail views resolve it to a hole.
func (s *AssetService) DeleteRoom(ctx context.Context, id string) error {
	if _, err := s.Rooms.Get(ctx, id); err != nil {
		return err
	}

	nuts.L.Infof("[RoomService] Deleting room: %s", id)
	if err := s.Cleanup.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.invalidateDetailForChild(ctx, id)
	return nil
}

// ListRoomsByOwner retrieves one page of an owner's rooms
func (s *AssetService) ListRoomsByOwner(ctx context.Context, ownerID string, page, pageSize int) (pagination.Page[*models.Room], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	totalElements, err := s.Rooms.CountByOwner(ctx, ownerID)
	if err != nil {
		return pagination.Page[*models.Room]{}, err
	}

	if !pagination.InRange(page, totalElements, pageSize) {
		return pagination.EmptyPage[*models.Room](totalElements, pageSize), nil
	}

	window := pagination.WindowFor(page, pageSize)
	rooms, err := s.Rooms.ListByOwner(ctx, ownerID, window.Offset, window.Limit)
	if err != nil {
		return pagination.Page[*models.Room]{}, err
	}

	return pagination.NewPage(rooms, totalElements, page, pageSize), nil
}

// AssignRoomsToWarehouse rewrites the warehouse backreference of the given
// rooms. A missing room is skipped with a warning, matching the loose
// coupling of the id arrays.
func (s *AssetService) AssignRoomsToWarehouse(ctx context.Context, warehouseID string, roomIDs []string) error {
	if warehouseID == "" || len(roomIDs) == 0 {
		return errors.NewValidationError("warehouse id and room ids are required", nil)
	}

	for _, roomID := range roomIDs {
		if err := s.Rooms.SetWarehouseID(ctx, roomID, warehouseID); err != nil {
			if errors.IsNotFound(err) {
				nuts.L.Warnf("[RoomService] Room not found for id: %s", roomID)
				continue
			}
			return err
		}
	}
	s.invalidateDetail(ctx, warehouseID)
	return nil
}
