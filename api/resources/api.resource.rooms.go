// FilePath: api/resources/api.resource.rooms.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/assetservice"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/models"
)

// RoomHandlers encapsulates the room-related HTTP handlers
type RoomHandlers struct {
	assets *assetservice.AssetService
}

// assignWarehouseRequest is the body of the bulk backreference rewrite.
type assignWarehouseRequest struct {
	WarehouseID string   `json:"warehouse_id"`
	RoomIDs     []string `json:"room_ids"`
	DGSetIDs    []string `json:"dgset_ids"`
}

// @Summary Create a new room
// @Description Create a new room with the provided details
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body models.Room true "Room details"
// @Success 201 {object} models.Room
// @Failure 400 {object} errors.APIError
// @Router /rooms [post]
// @Security BearerAuth
func (h *RoomHandlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room models.Room
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.CreateRoom(r.Context(), &room)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to create room", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, room)
}

// @Summary Get a room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} errors.APIError
// @Router /rooms/{id} [get]
func (h *RoomHandlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	room, err := h.assets.GetRoom(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get room", err)
		return
	}

	respondWithJSON(w, http.StatusOK, room)
}

// @Summary List rooms by owner
// @Description Get one page of an owner's rooms
// @Tags rooms
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} pagination.Page[models.Room]
// @Router /rooms/owner/{ownerId} [get]
func (h *RoomHandlers) ListRoomsByOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	requestID := nuts.NID("req", 12)
	q := getListQuery(r)

	page, err := h.assets.ListRoomsByOwner(r.Context(), ownerID, q.Page, q.PageSize)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list rooms", err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body models.Room true "Updated room details"
// @Success 200 {object} models.Room
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /rooms/{id} [put]
// @Security BearerAuth
func (h *RoomHandlers) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	var room models.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	room.ID = id
	err := h.assets.UpdateRoom(r.Context(), &room)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to update room", err)
		return
	}

	respondWithJSON(w, http.StatusOK, room)
}

// @Summary Delete a room
// @Description Delete a room record; warehouses keep the stale reference
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /rooms/{id} [delete]
// @Security BearerAuth
func (h *RoomHandlers) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	err := h.assets.DeleteRoom(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to delete room", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Assign rooms to a warehouse
// @Description Rewrite the warehouse backreference of the listed rooms
// @Tags rooms
// @Accept json
// @Produce json
// @Param assignment body assignWarehouseRequest true "Warehouse id and room ids"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /rooms/warehouse [put]
// @Security BearerAuth
func (h *RoomHandlers) AssignWarehouse(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req assignWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.AssignRoomsToWarehouse(r.Context(), req.WarehouseID, req.RoomIDs)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to assign rooms", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
