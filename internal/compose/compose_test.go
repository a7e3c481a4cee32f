// FilePath: internal/compose/compose_test.go
package compose

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

// Fake repositories backed by maps. Get returns NotFound for unknown ids and
// a forced error for ids registered as failing, which is how the tests drive
// the hole-vs-abort distinction.

type fakeBase struct{}

func (fakeBase) BeginTx(ctx context.Context) (database.Transaction, error) {
	return nil, nil
}

type fakeRoomRepo struct {
	fakeBase
	rooms   map[string]*models.Room
	failing map[string]error
}

func (f *fakeRoomRepo) Get(ctx context.Context, id string) (*models.Room, error) {
	if err, ok := f.failing[id]; ok {
		return nil, err
	}
	if room, ok := f.rooms[id]; ok {
		return room, nil
	}
	return nil, errors.NewNotFoundError("room not found", nil)
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *models.Room) error { return nil }
func (f *fakeRoomRepo) Update(ctx context.Context, room *models.Room) error { return nil }
func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeRoomRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Room, error) {
	return nil, nil
}
func (f *fakeRoomRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}
func (f *fakeRoomRepo) SetWarehouseID(ctx context.Context, id, warehouseID string) error { return nil }

type fakeGridRepo struct {
	fakeBase
	grids map[string]*models.Grid
}

func (f *fakeGridRepo) Get(ctx context.Context, id string) (*models.Grid, error) {
	if grid, ok := f.grids[id]; ok {
		return grid, nil
	}
	return nil, errors.NewNotFoundError("grid not found", nil)
}

func (f *fakeGridRepo) Create(ctx context.Context, grid *models.Grid) error { return nil }
func (f *fakeGridRepo) Update(ctx context.Context, grid *models.Grid) error { return nil }
func (f *fakeGridRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeGridRepo) List(ctx context.Context, offset, limit int) ([]*models.Grid, error) {
	return nil, nil
}

type fakeDGSetRepo struct {
	fakeBase
	dgsets map[string]*models.DGSet
}

func (f *fakeDGSetRepo) Get(ctx context.Context, id string) (*models.DGSet, error) {
	if dgset, ok := f.dgsets[id]; ok {
		return dgset, nil
	}
	return nil, errors.NewNotFoundError("dgset not found", nil)
}

func (f *fakeDGSetRepo) Create(ctx context.Context, dgset *models.DGSet) error { return nil }
func (f *fakeDGSetRepo) Update(ctx context.Context, dgset *models.DGSet) error { return nil }
func (f *fakeDGSetRepo) Delete(ctx context.Context, id string) error           { return nil }
func (f *fakeDGSetRepo) List(ctx context.Context, offset, limit int) ([]*models.DGSet, error) {
	return nil, nil
}
func (f *fakeDGSetRepo) SetWarehouseID(ctx context.Context, id, warehouseID string) error {
	return nil
}

func newFakes() (*fakeRoomRepo, *fakeGridRepo, *fakeDGSetRepo) {
	return &fakeRoomRepo{
			rooms:   map[string]*models.Room{},
			failing: map[string]error{},
		},
		&fakeGridRepo{grids: map[string]*models.Grid{}},
		&fakeDGSetRepo{dgsets: map[string]*models.DGSet{}}
}

func TestResolveRoomsPreservesOrderAndHoles(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	rooms.rooms["rm_1"] = &models.Room{ID: "rm_1", RoomName: "Cold Aisle A"}
	rooms.rooms["rm_3"] = &models.Room{ID: "rm_3", RoomName: "Cold Aisle B"}
	resolver := NewResolver(rooms, grids, dgsets)

	details, err := resolver.ResolveRooms(context.Background(), []string{"rm_1", "rm_gone", "rm_3"})
	require.NoError(t, err)
	require.Len(t, details, 3, "result must keep input length")

	assert.Equal(t, "Cold Aisle A", details[0].RoomName)
	assert.Nil(t, details[1], "missing id resolves to a hole, not an error")
	assert.Equal(t, "Cold Aisle B", details[2].RoomName)
}

func TestResolveRoomsStoreFailureAborts(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	rooms.rooms["rm_1"] = &models.Room{ID: "rm_1"}
	rooms.failing["rm_2"] = errors.NewDatabaseError("connection reset", nil)
	resolver := NewResolver(rooms, grids, dgsets)

	details, err := resolver.ResolveRooms(context.Background(), []string{"rm_1", "rm_2"})
	assert.Error(t, err)
	assert.Nil(t, details)
}

func TestComposeWarehouseEmptyArraysShortCircuit(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	composer := NewComposer(NewResolver(rooms, grids, dgsets))

	warehouse := &models.Warehouse{ID: "wh_1", Name: "Central"}
	detail, err := composer.ComposeWarehouse(context.Background(), warehouse)
	require.NoError(t, err)

	assert.Equal(t, "wh_1", detail.ID)
	assert.Empty(t, detail.Rooms)
	assert.Empty(t, detail.Grids)
	assert.Empty(t, detail.DGSets)
}

func TestComposeWarehouseResolvesAllKinds(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	rooms.rooms["rm_1"] = &models.Room{ID: "rm_1", RoomName: "Server Room", Racks: 8}
	grids.grids["gd_1"] = &models.Grid{ID: "gd_1", Name: "City Grid", OutputVoltage: 400}
	dgsets.dgsets["dg_1"] = &models.DGSet{ID: "dg_1", Name: "Backup Gen", FuelType: "diesel"}
	composer := NewComposer(NewResolver(rooms, grids, dgsets))

	warehouse := &models.Warehouse{
		ID:       "wh_1",
		RoomIDs:  []string{"rm_1"},
		GridIDs:  []string{"gd_1"},
		DGSetIDs: []string{"dg_1", "dg_stale"},
	}

	detail, err := composer.ComposeWarehouse(context.Background(), warehouse)
	require.NoError(t, err)

	require.Len(t, detail.Rooms, 1)
	assert.Equal(t, 8, detail.Rooms[0].Racks)
	require.Len(t, detail.Grids, 1)
	assert.Equal(t, float64(400), detail.Grids[0].OutputVoltage)
	require.Len(t, detail.DGSets, 2)
	assert.Equal(t, "diesel", detail.DGSets[0].FuelType)
	assert.Nil(t, detail.DGSets[1], "stale dgset reference becomes a hole")
}

func TestComposeWarehouseNoPartialOnFailure(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	rooms.failing["rm_bad"] = errors.NewDatabaseError("connection reset", nil)
	grids.grids["gd_1"] = &models.Grid{ID: "gd_1"}
	composer := NewComposer(NewResolver(rooms, grids, dgsets))

	warehouse := &models.Warehouse{
		ID:      "wh_1",
		RoomIDs: []string{"rm_bad"},
		GridIDs: []string{"gd_1"},
	}

	detail, err := composer.ComposeWarehouse(context.Background(), warehouse)
	assert.Error(t, err)
	assert.Nil(t, detail, "a failed kind must not yield a partial warehouse")
}

func TestComposeWarehouseListDropsFailedWarehouses(t *testing.T) {
	rooms, grids, dgsets := newFakes()
	rooms.rooms["rm_1"] = &models.Room{ID: "rm_1"}
	rooms.failing["rm_bad"] = errors.NewDatabaseError("connection reset", nil)
	composer := NewComposer(NewResolver(rooms, grids, dgsets))

	warehouses := []*models.Warehouse{
		{ID: "wh_ok", RoomIDs: []string{"rm_1"}},
		{ID: "wh_bad", RoomIDs: []string{"rm_bad"}},
		{ID: "wh_empty"},
	}

	details := composer.ComposeWarehouseList(context.Background(), warehouses)
	require.Len(t, details, 2, "failed warehouse is dropped, not propagated")
	assert.Equal(t, "wh_ok", details[0].ID)
	assert.Equal(t, "wh_empty", details[1].ID)
}
