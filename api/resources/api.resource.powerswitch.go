// FilePath: api/resources/api.resource.powerswitch.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/assetservice"
	"github.com/voltwatch/facilityhub/internal/errors"
)

// PowerSwitchHandlers encapsulates the power-source HTTP handlers
type PowerSwitchHandlers struct {
	assets *assetservice.AssetService
}

// switchRequest is the body of the transition endpoint. Status true selects
// generator supply (source_id must be a dgset), false grid supply (source_id
// must be a grid).
type switchRequest struct {
	Status   bool   `json:"powerSource_status"`
	SourceID string `json:"source_id"`
}

// @Summary Get current power source
// @Description Get the facility's current power-source state
// @Tags powerswitch
// @Produce json
// @Success 200 {object} models.PowerSwitch
// @Failure 404 {object} errors.APIError
// @Router /powerswitch [get]
func (h *PowerSwitchHandlers) GetPowerSource(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	sw, err := h.assets.CurrentPowerSource(r.Context())
	if err != nil {
		respondWithServiceError(w, requestID, "failed to get power source", err)
		return
	}

	respondWithJSON(w, http.StatusOK, sw)
}

// @Summary Switch the power source
// @Description Transition the facility between grid and generator supply. The
// @Description target source must exist; a failed switch leaves the prior state untouched.
// @Tags powerswitch
// @Accept json
// @Produce json
// @Param transition body switchRequest true "Target source"
// @Success 200 {object} models.PowerSwitch
// @Failure 400 {object} errors.APIError
// @Router /powerswitch [post]
// @Security BearerAuth
func (h *PowerSwitchHandlers) SwitchPowerSource(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req switchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	sw, err := h.assets.SwitchPowerSource(r.Context(), req.Status, req.SourceID)
	if err != nil {
		respondWithServiceError(w, requestID, "failed to switch power source", err)
		return
	}

	respondWithJSON(w, http.StatusOK, sw)
}
