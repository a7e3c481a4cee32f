// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/internal/assetservice"
	"github.com/voltwatch/facilityhub/internal/errors"
	"github.com/voltwatch/facilityhub/internal/pagination"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Warehouses  *WarehouseHandlers
	Rooms       *RoomHandlers
	Grids       *GridHandlers
	DGSets      *DGSetHandlers
	PowerSwitch *PowerSwitchHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *assetservice.AssetService) *Resources {
	return &Resources{
		Warehouses:  &WarehouseHandlers{assets: svc},
		Rooms:       &RoomHandlers{assets: svc},
		Grids:       &GridHandlers{assets: svc},
		DGSets:      &DGSetHandlers{assets: svc},
		PowerSwitch: &PowerSwitchHandlers{assets: svc},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// Helper functions shared by all handlers

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// listQuery carries the pagination query parameters. Page is 0-based.
type listQuery struct {
	Page     int `schema:"page"`
	PageSize int `schema:"pageSize"`
}

func getListQuery(r *http.Request) listQuery {
	q := listQuery{Page: 0, PageSize: pagination.DefaultPageSize}
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		nuts.L.Warnf("[API] Ignoring malformed list query: %v", err)
	}
	return q
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondWithServiceError forwards a service error, keeping its taxonomy
// type and status code when it already is an APIError.
func respondWithServiceError(w http.ResponseWriter, requestID, fallbackMsg string, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError(fallbackMsg, err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
