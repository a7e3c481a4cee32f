// FilePath: api/resources/api.resource.warehouses.go
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

// WarehouseHandlers encapsulates the warehouse-related HTTP handlers
type WarehouseHandlers struct {
	assets *assetservice.AssetService
}

// attachRequest is the body of the attach endpoints: child ids to union into
// the warehouse's id arrays.
type attachRequest struct {
	RoomIDs  []string `json:"room_ids"`
	GridIDs  []string `json:"grid_ids"`
	DGSetIDs []string `json:"dgset_ids"`
}

// @Summary Create a new warehouse
// @Description Create a new warehouse with the provided details
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body models.Warehouse true "Warehouse details"
// @Success 201 {object} models.Warehouse
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /warehouses [post]
// @Security BearerAuth
func (h *WarehouseHandlers) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var warehouse models.Warehouse
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&warehouse); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.CreateWarehouse(r.Context(), &warehouse)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to create warehouse", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, warehouse)
}

// @Summary Get a warehouse by ID
// @Description Get the raw warehouse record including child id arrays
// @Tags warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} models.Warehouse
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id} [get]
func (h *WarehouseHandlers) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	warehouse, err := h.assets.GetWarehouse(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get warehouse", err)
		return
	}

	respondWithJSON(w, http.StatusOK, warehouse)
}

// @Summary Get composed warehouse detail
// @Description Get a warehouse with rooms, grids and dgsets resolved into detail objects
// @Tags warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} models.WarehouseDetail
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id}/detail [get]
func (h *WarehouseHandlers) GetWarehouseDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	detail, err := h.assets.GetWarehouseDetail(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get warehouse detail", err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// @Summary List warehouses by owner
// @Description Get one page of an owner's warehouses
// @Tags warehouses
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} pagination.Page[models.Warehouse]
// @Router /warehouses/owner/{ownerId} [get]
func (h *WarehouseHandlers) ListWarehousesByOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	requestID := nuts.NID("req", 12)
	q := getListQuery(r)

	page, err := h.assets.ListWarehousesByOwner(r.Context(), ownerID, q.Page, q.PageSize)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list warehouses", err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// @Summary List composed warehouse details by owner
// @Description Get every warehouse of an owner with children resolved
// @Tags warehouses
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Success 200 {array} models.WarehouseDetail
// @Router /warehouses/owner/{ownerId}/detail [get]
func (h *WarehouseHandlers) ListWarehouseDetailsByOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	requestID := nuts.NID("req", 12)

	details, err := h.assets.ListWarehouseDetailsByOwner(r.Context(), ownerID)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list warehouse details", err)
		return
	}

	respondWithJSON(w, http.StatusOK, details)
}

// @Summary List room ids in use
// @Description Get every room id referenced by the owner's warehouses
// @Tags warehouses
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Success 200 {object} map[string][]string
// @Router /warehouses/owner/{ownerId}/rooms-in-use [get]
func (h *WarehouseHandlers) RoomsInUse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	requestID := nuts.NID("req", 12)

	roomIDs, err := h.assets.RoomsInUse(r.Context(), ownerID)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list rooms in use", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]string{"room_ids": roomIDs})
}

// @Summary Update a warehouse
// @Description Update an existing warehouse's details
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID"
// @Param warehouse body models.Warehouse true "Updated warehouse details"
// @Success 200 {object} models.Warehouse
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id} [put]
// @Security BearerAuth
func (h *WarehouseHandlers) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	var warehouse models.Warehouse
	if err := json.NewDecoder(r.Body).Decode(&warehouse); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	warehouse.ID = id
	err := h.assets.UpdateWarehouse(r.Context(), &warehouse)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to update warehouse", err)
		return
	}

	respondWithJSON(w, http.StatusOK, warehouse)
}

// @Summary Delete a warehouse
// @Description Delete a warehouse record; child assets are not removed
// @Tags warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id} [delete]
// @Security BearerAuth
func (h *WarehouseHandlers) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	err := h.assets.DeleteWarehouse(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to delete warehouse", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WarehouseHandlers) attachChildren(w http.ResponseWriter, r *http.Request, roomIDs, gridIDs, dgsetIDs []string) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	warehouse, err := h.assets.AttachChildren(r.Context(), id, roomIDs, gridIDs, dgsetIDs)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to attach children", err)
		return
	}

	respondWithJSON(w, http.StatusOK, warehouse)
}

// @Summary Attach rooms to a warehouse
// @Description Union room ids into the warehouse's room_ids array
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID"
// @Param rooms body attachRequest true "Room ids to attach"
// @Success 200 {object} models.Warehouse
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id}/rooms [post]
// @Security BearerAuth
func (h *WarehouseHandlers) AttachRooms(w http.ResponseWriter, r *http.Request) {
	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err))
		return
	}
	h.attachChildren(w, r, req.RoomIDs, nil, nil)
}

// @Summary Attach grids to a warehouse
// @Description Union grid ids into the warehouse's grid_ids array
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID"
// @Param grids body attachRequest true "Grid ids to attach"
// @Success 200 {object} models.Warehouse
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id}/grids [post]
// @Security BearerAuth
func (h *WarehouseHandlers) AttachGrids(w http.ResponseWriter, r *http.Request) {
	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err))
		return
	}
	h.attachChildren(w, r, nil, req.GridIDs, nil)
}

// @Summary Attach dgsets to a warehouse
// @Description Union dgset ids into the warehouse's dgset_ids array
// @Tags warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID"
// @Param dgsets body attachRequest true "DGSet ids to attach"
// @Success 200 {object} models.Warehouse
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /warehouses/{id}/dgsets [post]
// @Security BearerAuth
func (h *WarehouseHandlers) AttachDGSets(w http.ResponseWriter, r *http.Request) {
	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err))
		return
	}
	h.attachChildren(w, r, nil, nil, req.DGSetIDs)
}
