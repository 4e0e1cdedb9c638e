package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"techparts-store/internal/cart"
	"techparts-store/internal/catalog"
	"techparts-store/internal/config"
	"techparts-store/internal/domain"
	"techparts-store/internal/logger"
	"techparts-store/internal/orders"
	"techparts-store/internal/profile"
	"techparts-store/internal/server"
	"techparts-store/internal/state"

	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	// Open the local settings store
	settings, err := profile.OpenSettingsStore(cfg.Store.SettingsPath, log)
	if err != nil {
		log.Fatal("Failed to open settings store", zap.Error(err))
	}
	log.Info("Settings store ready", zap.String("path", cfg.Store.SettingsPath))

	// Hydrate the store profile from the last explicit save, if any
	profileManager := profile.NewManager(settings, log)
	profileManager.Load()

	// Assemble the application state with the demo catalog and order book
	app := state.New(
		catalog.New(domain.SeedProducts()),
		orders.New(domain.SeedOrders()),
		cart.New(),
		profileManager,
	)

	// Create server
	srv := server.NewServer(cfg, log, app, settings)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
