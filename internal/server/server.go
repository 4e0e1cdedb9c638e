package server

import (
	"fmt"
	"net/http"
	"time"

	"techparts-store/internal/config"
	custommiddleware "techparts-store/internal/middleware"
	"techparts-store/internal/profile"
	"techparts-store/internal/state"
	"techparts-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	settings *profile.SettingsStore
}

func NewServer(cfg *config.Config, logger *zap.Logger, app *state.App, settings *profile.SettingsStore) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize handlers
	storeHandler := transport.NewStoreHandler(app, logger)
	adminHandler := transport.NewAdminHandler(app, logger)

	// Create the admin gate middleware
	adminGate := custommiddleware.AdminGateMiddleware(logger)

	// Register routes
	storeHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router, adminGate)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		settings: settings,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close the settings store
	if s.settings != nil {
		if err := s.settings.Close(); err != nil {
			s.logger.Error("Failed to close settings store", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
