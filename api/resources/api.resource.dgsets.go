// FilePath: api/resources/api.resource.dgsets.go
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

// DGSetHandlers encapsulates the generator-set HTTP handlers
type DGSetHandlers struct {
	assets *assetservice.AssetService
}

// @Summary Create a new dgset
// @Description Create a new diesel-generator-set record
// @Tags dgsets
// @Accept json
// @Produce json
// @Param dgset body models.DGSet true "DGSet details"
// @Success 201 {object} models.DGSet
// @Failure 400 {object} errors.APIError
// @Router /dgsets [post]
// @Security BearerAuth
func (h *DGSetHandlers) CreateDGSet(w http.ResponseWriter, r *http.Request) {
	var dgset models.DGSet
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&dgset); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.CreateDGSet(r.Context(), &dgset)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to create dgset", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, dgset)
}

// @Summary Get a dgset by ID
// @Tags dgsets
// @Produce json
// @Param id path string true "DGSet ID"
// @Success 200 {object} models.DGSet
// @Failure 404 {object} errors.APIError
// @Router /dgsets/{id} [get]
func (h *DGSetHandlers) GetDGSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	dgset, err := h.assets.GetDGSet(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get dgset", err)
		return
	}

	respondWithJSON(w, http.StatusOK, dgset)
}

// @Summary List dgsets
// @Tags dgsets
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Items per page"
// @Success 200 {array} models.DGSet
// @Router /dgsets [get]
func (h *DGSetHandlers) ListDGSets(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	q := getListQuery(r)

	dgsets, err := h.assets.ListDGSets(r.Context(), q.Page, q.PageSize)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list dgsets", err)
		return
	}

	respondWithJSON(w, http.StatusOK, dgsets)
}

// @Summary Update a dgset
// @Tags dgsets
// @Accept json
// @Produce json
// @Param id path string true "DGSet ID"
// @Param dgset body models.DGSet true "Updated dgset details"
// @Success 200 {object} models.DGSet
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /dgsets/{id} [put]
// @Security BearerAuth
func (h *DGSetHandlers) UpdateDGSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	var dgset models.DGSet
	if err := json.NewDecoder(r.Body).Decode(&dgset); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	dgset.ID = id
	err := h.assets.UpdateDGSet(r.Context(), &dgset)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to update dgset", err)
		return
	}

	respondWithJSON(w, http.StatusOK, dgset)
}

// @Summary Delete a dgset
// @Description Delete a dgset record; warehouses keep the stale reference
// @Tags dgsets
// @Produce json
// @Param id path string true "DGSet ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /dgsets/{id} [delete]
// @Security BearerAuth
func (h *DGSetHandlers) DeleteDGSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	err := h.assets.DeleteDGSet(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to delete dgset", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Assign dgsets to a warehouse
// @Description Rewrite the warehouse backreference of the listed dgsets
// @Tags dgsets
// @Accept json
// @Produce json
// @Param assignment body assignWarehouseRequest true "Warehouse id and dgset ids"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /dgsets/warehouse [put]
// @Security BearerAuth
func (h *DGSetHandlers) AssignWarehouse(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req assignWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.AssignDGSetsToWarehouse(r.Context(), req.WarehouseID, req.DGSetIDs)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to assign dgsets", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
