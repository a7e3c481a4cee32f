// FilePath: api/resources/api.resource.grids.go
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

// GridHandlers encapsulates the utility-grid HTTP handlers
type GridHandlers struct {
	assets *assetservice.AssetService
}

// @Summary Create a new grid
// @Description Create a new utility-grid record
// @Tags grids
// @Accept json
// @Produce json
// @Param grid body models.Grid true "Grid details"
// @Success 201 {object} models.Grid
// @Failure 400 {object} errors.APIError
// @Router /grids [post]
// @Security BearerAuth
func (h *GridHandlers) CreateGrid(w http.ResponseWriter, r *http.Request) {
	var grid models.Grid
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&grid); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	err := h.assets.CreateGrid(r.Context(), &grid)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to create grid", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, grid)
}

// @Summary Get a grid by ID
// @Tags grids
// @Produce json
// @Param id path string true "Grid ID"
// @Success 200 {object} models.Grid
// @Failure 404 {object} errors.APIError
// @Router /grids/{id} [get]
func (h *GridHandlers) GetGrid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	grid, err := h.assets.GetGrid(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get grid", err)
		return
	}

	respondWithJSON(w, http.StatusOK, grid)
}

// @Summary List grids
// @Produce json
// @Tags grids
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Items per page"
// @Success 200 {array} models.Grid
// @Router /grids [get]
func (h *GridHandlers) ListGrids(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	q := getListQuery(r)

	grids, err := h.assets.ListGrids(r.Context(), q.Page, q.PageSize)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to list grids", err)
		return
	}

	respondWithJSON(w, http.StatusOK, grids)
}

// @Summary Update a grid
// @Tags grids
// @Accept json
// @Produce json
// @Param id path string true "Grid ID"
// @Param grid body models.Grid true "Updated grid details"
// @Success 200 {object} models.Grid
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /grids/{id} [put]
// @Security BearerAuth
func (h *GridHandlers) UpdateGrid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	var grid models.Grid
	if err := json.NewDecoder(r.Body).Decode(&grid); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	grid.ID = id
	err := h.assets.UpdateGrid(r.Context(), &grid)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to update grid", err)
		return
	}

	respondWithJSON(w, http.StatusOK, grid)
}

// @Summary Delete a grid
// @Tags grids
// @Produce json
// @Param id path string true "Grid ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /grids/{id} [delete]
// @Security BearerAuth
func (h *GridHandlers) DeleteGrid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	err := h.assets.DeleteGrid(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to delete grid", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
