package cleanup

import (
	"context"

	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/repository"
)

// Service coordinates asset deletion and emits lifecycle events.
//
// Deletion policy: ownership between warehouses and their children is
// by-reference only, and deletes do NOT cascade. Deleting a warehouse leaves
// its rooms/grids/dgsets (and their warehouse_id backreferences) untouched;
// deleting a child leaves its id inside any warehouse's id arrays. Stale
// references are resolved to holes by the composer.
type Service struct {
	warehouses repository.WarehouseRepository
	rooms      repository.RoomRepository
	grids      repository.GridRepository
	dgsets     repository.DGSetRepository
	events     *nuts.EventEmitter
}

// New creates a new cleanup Service
func New(
	warehouses repository.WarehouseRepository,
	rooms repository.RoomRepository,
	grids repository.GridRepository,
	dgsets repository.DGSetRepository,
) *Service {
	return &Service{
		warehouses: warehouses,
		rooms:      rooms,
		grids:      grids,
		dgsets:     dgsets,
		events:     nuts.NewEventEmitter(),
	}
}

// DeleteWarehouse deletes the warehouse record only, per the no-cascade
// policy above.
func (s *Service) DeleteWarehouse(ctx context.Context, id string) error {
	if err := s.warehouses.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Emit("warehouse.deleted", id)
	return nil
}

// DeleteRoom deletes the room record only.
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Emit("room.deleted", id)
	return nil
}

// DeleteGrid deletes the grid record only.
func (s *Service) DeleteGrid(ctx context.Context, id string) error {
	if err := s.grids.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Emit("grid.deleted", id)
	return nil
}

// DeleteDGSet deletes the dgset record only.
func (s *Service) DeleteDGSet(ctx context.Context, id string) error {
	if err := s.dgsets.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Emit("dgset.deleted", id)
	return nil
}

// OnCleanup registers a callback for cleanup events
func (s *Service) OnCleanup(event string, handler func(id string)) {
	s.events.On(event, "cleanup_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}
