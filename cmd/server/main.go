// @title         Career Fair API
// @version       1.0
// @description   Resume submission and review service for the career-fair platform: booth and job-targeted submissions, status triage, fair registrations, and the public job catalog.
// @BasePath      /
// @schemes       http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/fairlink/careerfair-api/docs"
	"github.com/fairlink/careerfair-api/internal/api"
	"github.com/fairlink/careerfair-api/internal/infrastructure/config"
	"github.com/fairlink/careerfair-api/internal/infrastructure/db/sqlite"
	"github.com/fairlink/careerfair-api/internal/infrastructure/filestore"
	"github.com/fairlink/careerfair-api/pkg/logger"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("could not open database")
	}
	defer store.Close()

	files, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("could not create upload directory")
	}

	e := api.NewRouter(store, files, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("career fair API listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
