// FilePath: internal/compose/resolver.go
package compose

import (
	"context"
	"sync"

	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
	"github.com/voltwatch/facilityhub/internal/repository"
)

// Resolver turns child-id arrays into projected detail records. Every id is
// looked up independently and concurrently; the result slice preserves input
// order and length. An id with no matching record resolves to nil rather than
// failing the whole batch, so stale references degrade instead of crashing.
// Only a store-access failure aborts a resolve.
type Resolver struct {
	rooms  repository.RoomRepository
	grids  repository.GridRepository
	dgsets repository.DGSetRepository
}

func NewResolver(
	rooms repository.RoomRepository,
	grids repository.GridRepository,
	dgsets repository.DGSetRepository,
) *Resolver {
	return &Resolver{
		rooms:  rooms,
		grids:  grids,
		dgsets: dgsets,
	}
}

// resolveEach runs lookup for every id concurrently and keeps positions.
// NotFound leaves a hole; the first non-NotFound error wins.
func resolveEach(ctx context.Context, ids []string, lookup func(ctx context.Context, id string, pos int) error) error {
	if len(ids) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for pos, id := range ids {
		wg.Add(1)
		go func(id string, pos int) {
			defer wg.Done()
			if err := lookup(ctx, id, pos); err != nil {
				if errors.IsNotFound(err) {
					return
				}
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(id, pos)
	}

	wg.Wait()
	return firstErr
}

// ResolveRooms resolves room ids to their warehouse-view projection.
func (r *Resolver) ResolveRooms(ctx context.Context, ids []string) ([]*models.RoomDetail, error) {
	details := make([]*models.RoomDetail, len(ids))
	err := resolveEach(ctx, ids, func(ctx context.Context, id string, pos int) error {
		room, err := r.rooms.Get(ctx, id)
		if err != nil {
			return err
		}
		details[pos] = models.NewRoomDetail(room)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// ResolveGrids resolves grid ids to their warehouse-view projection.
func (r *Resolver) ResolveGrids(ctx context.Context, ids []string) ([]*models.GridDetail, error) {
	details := make([]*models.GridDetail, len(ids))
	err := resolveEach(ctx, ids, func(ctx context.Context, id string, pos int) error {
		grid, err := r.grids.Get(ctx, id)
		if err != nil {
			return err
		}
		details[pos] = models.NewGridDetail(grid)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// ResolveDGSets resolves dgset ids to their warehouse-view projection.
func (r *Resolver) ResolveDGSets(ctx context.Context, ids []string) ([]*models.DGSetDetail, error) {
	details := make([]*models.DGSetDetail, len(ids))
	err := resolveEach(ctx, ids, func(ctx context.Context, id string, pos int) error {
		dgset, err := r.dgsets.Get(ctx, id)
		if err != nil {
			return err
		}
		details[pos] = models.NewDGSetDetail(dgset)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}
