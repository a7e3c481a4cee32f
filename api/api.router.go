package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/voltwatch/facilityhub/api/middleware"
	"github.com/voltwatch/facilityhub/api/resources"
	"github.com/voltwatch/facilityhub/internal/assetservice"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.KeycloakMiddleware
	resources *resources.Resources
}

func NewRouter(svc *assetservice.AssetService, keycloakConfig middleware.KeycloakConfig) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      middleware.NewKeycloakMiddleware(keycloakConfig),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Public routes. The health handler is wired after construction, so go
	// through the resources indirection instead of capturing a nil func.
	api.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if r.resources.HealthCheck == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		r.resources.HealthCheck(w, req)
	}).Methods(http.MethodGet)

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.auth.Authenticate)

	// Warehouses
	warehouses := protected.PathPrefix("/warehouses").Subrouter()
	warehouses.HandleFunc("", r.resources.Warehouses.CreateWarehouse).Methods(http.MethodPost)
	warehouses.HandleFunc("/owner/{ownerId}", r.resources.Warehouses.ListWarehousesByOwner).Methods(http.MethodGet)
	warehouses.HandleFunc("/owner/{ownerId}/detail", r.resources.Warehouses.ListWarehouseDetailsByOwner).Methods(http.MethodGet)
	warehouses.HandleFunc("/owner/{ownerId}/rooms-in-use", r.resources.Warehouses.RoomsInUse).Methods(http.MethodGet)
	warehouses.HandleFunc("/{id}", r.resources.Warehouses.GetWarehouse).Methods(http.MethodGet)
	warehouses.HandleFunc("/{id}/detail", r.resources.Warehouses.GetWarehouseDetail).Methods(http.MethodGet)
	warehouses.HandleFunc("/{id}", r.resources.Warehouses.UpdateWarehouse).Methods(http.MethodPut)
	warehouses.HandleFunc("/{id}", r.resources.Warehouses.DeleteWarehouse).Methods(http.MethodDelete)
	warehouses.HandleFunc("/{id}/rooms", r.resources.Warehouses.AttachRooms).Methods(http.MethodPost)
	warehouses.HandleFunc("/{id}/grids", r.resources.Warehouses.AttachGrids).Methods(http.MethodPost)
	warehouses.HandleFunc("/{id}/dgsets", r.resources.Warehouses.AttachDGSets).Methods(http.MethodPost)

	// Rooms
	rooms := protected.PathPrefix("/rooms").Subrouter()
	rooms.HandleFunc("", r.resources.Rooms.CreateRoom).Methods(http.MethodPost)
	rooms.HandleFunc("/warehouse", r.resources.Rooms.AssignWarehouse).Methods(http.MethodPut)
	rooms.HandleFunc("/owner/{ownerId}", r.resources.Rooms.ListRoomsByOwner).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}", r.resources.Rooms.GetRoom).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}", r.resources.Rooms.UpdateRoom).Methods(http.MethodPut)
	rooms.HandleFunc("/{id}", r.resources.Rooms.DeleteRoom).Methods(http.MethodDelete)

	// Grids
	grids := protected.PathPrefix("/grids").Subrouter()
	grids.HandleFunc("", r.resources.Grids.ListGrids).Methods(http.MethodGet)
	grids.HandleFunc("", r.resources.Grids.CreateGrid).Methods(http.MethodPost)
	grids.HandleFunc("/{id}", r.resources.Grids.GetGrid).Methods(http.MethodGet)
	grids.HandleFunc("/{id}", r.resources.Grids.UpdateGrid).Methods(http.MethodPut)
	grids.HandleFunc("/{id}", r.resources.Grids.DeleteGrid).Methods(http.MethodDelete)

	// DGSets
	dgsets := protected.PathPrefix("/dgsets").Subrouter()
	dgsets.HandleFunc("", r.resources.DGSets.ListDGSets).Methods(http.MethodGet)
	dgsets.HandleFunc("", r.resources.DGSets.CreateDGSet).Methods(http.MethodPost)
	dgsets.HandleFunc("/warehouse", r.resources.DGSets.AssignWarehouse).Methods(http.MethodPut)
	dgsets.HandleFunc("/{id}", r.resources.DGSets.GetDGSet).Methods(http.MethodGet)
	dgsets.HandleFunc("/{id}", r.resources.DGSets.UpdateDGSet).Methods(http.MethodPut)
	dgsets.HandleFunc("/{id}", r.resources.DGSets.DeleteDGSet).Methods(http.MethodDelete)

	// Power switch
	power := protected.PathPrefix("/powerswitch").Subrouter()
	power.HandleFunc("", r.resources.PowerSwitch.GetPowerSource).Methods(http.MethodGet)
	power.HandleFunc("", r.resources.PowerSwitch.SwitchPowerSource).Methods(http.MethodPost)
}

// SetHealthCheck wires the server's health handler into the public route.
func (r *Router) SetHealthCheck(h func(w http.ResponseWriter, req *http.Request)) {
	r.resources.SetHealthCheck(h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
