package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/devfolio/content-service/internal/api"
	"github.com/devfolio/content-service/internal/config"
	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/platform/logger"
	"github.com/devfolio/content-service/internal/store"
	fsstore "github.com/devfolio/content-service/internal/store/firestore"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	log := logger.New("content-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// The store handle is created once and shared read-only by every
	// request. A missing or failing store is a degraded mode, not a crash:
	// reads serve bundled defaults and writes report configuration errors.
	ctx := context.Background()
	var st store.Store
	if cfg.StoreConfigured() {
		fs, err := fsstore.New(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Error().Err(err).Msg("Document store unavailable, serving defaults")
		} else {
			defer func() { _ = fs.Close() }()
			st = fs
		}
	} else {
		log.Warn().Msg("PORTFOLIO_FIRESTORE_PROJECT_ID not set, serving defaults")
	}

	router := api.NewRouter(cfg, st, content.NewLogNotifier())
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
