// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
	"github.com/voltwatch/facilityhub/api"
	"github.com/voltwatch/facilityhub/api/middleware"
	"github.com/voltwatch/facilityhub/internal/assetservice"
	"github.com/voltwatch/facilityhub/internal/cache"
	"github.com/voltwatch/facilityhub/internal/config"
	"github.com/voltwatch/facilityhub/internal/database"
	"github.com/voltwatch/facilityhub/internal/monitoring"
	"github.com/voltwatch/facilityhub/internal/repository/postgres"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	assets     *assetservice.AssetService
	monitoring *monitoring.Service
	db         database.DB
	cache      *cache.DetailCache
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.assets = s.initializeAssetService()
	s.monitoring = monitoring.NewService(monitoring.Config{
		PrometheusEndpoint: s.config.Monitoring.PrometheusEndpoint,
		LokiEndpoint:       s.config.Monitoring.LokiEndpoint,
	})

	// Set up cleanup event handlers
	s.setupCleanupHandlers()

	// Router with CORS
	router := api.NewRouter(s.assets, middleware.KeycloakConfig{
		URL:          s.config.Keycloak.URL,
		Realm:        s.config.Keycloak.Realm,
		ClientID:     s.config.Keycloak.ClientID,
		ClientSecret: s.config.Keycloak.ClientSecret,
	})
	router.SetHealthCheck(s.handleHealth())

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(s.config.Server.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	s.srv.Handler = cors(router)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing cache: %v", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing database: %v", err)
		}
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a simple health check handler
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
	}
}

func (s *Server) setupCleanupHandlers() {
	s.assets.Cleanup.OnCleanup("warehouse.deleted", func(id string) {
		nuts.L.Infof("[Cleanup] Warehouse %s deleted, child assets untouched", id)
		s.monitoring.RecordEvent("warehouse_deletion", map[string]string{
			"warehouse_id": id,
		})
	})

	s.assets.Cleanup.OnCleanup("room.deleted", func(id string) {
		nuts.L.Infof("[Cleanup] Room %s deleted", id)
		s.monitoring.RecordEvent("room_deletion", map[string]string{
			"room_id": id,
		})
	})

	s.assets.Cleanup.OnCleanup("grid.deleted", func(id string) {
		nuts.L.Infof("[Cleanup] Grid %s deleted", id)
		s.monitoring.RecordEvent("grid_deletion", map[string]string{
			"grid_id": id,
		})
	})

	s.assets.Cleanup.OnCleanup("dgset.deleted", func(id string) {
		nuts.L.Infof("[Cleanup] DGSet %s deleted", id)
		s.monitoring.RecordEvent("dgset_deletion", map[string]string{
			"dgset_id": id,
		})
	})
}

// initializeAssetService creates the asset service on an explicit store handle
func (s *Server) initializeAssetService() *assetservice.AssetService {
	s.db = initAssetDB(s.config.Database.AssetDB)

	warehouses := postgres.NewWarehouseRepository(s.db)
	rooms := postgres.NewRoomRepository(s.db)
	grids := postgres.NewGridRepository(s.db)
	dgsets := postgres.NewDGSetRepository(s.db)
	powerSwitches := postgres.NewPowerSwitchRepository(s.db)

	s.cache = initDetailCache(s.config.Redis)

	svc := assetservice.New(warehouses, rooms, grids, dgsets, powerSwitches, s.cache)
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid asset service wiring: %v", err)
	}
	return svc
}

func initAssetDB(cfg config.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to asset database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping asset database: %v", err)
	}
	return wrappedDB
}

// initDetailCache connects the redis detail cache. Redis is optional; with no
// host configured or an unreachable server the service runs uncached.
func initDetailCache(cfg config.RedisConfig) *cache.DetailCache {
	if cfg.Host == "" {
		nuts.L.Infof("[Server] No redis host configured, detail cache disabled")
		return nil
	}
	c := cache.NewDetailCache(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		nuts.L.Warnf("[Server] Redis unreachable, detail cache disabled: %v", err)
		c.Close()
		return nil
	}
	return c
}
