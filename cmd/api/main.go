// Records API entrypoint: wires configuration, logging, the record store,
// the background audit dispatcher and the HTTP router, then serves until a
// shutdown signal arrives.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recordstack/records-api/internal/api"
	"github.com/recordstack/records-api/internal/core/service"
	"github.com/recordstack/records-api/internal/infrastructure/audit"
	"github.com/recordstack/records-api/internal/infrastructure/config"
	"github.com/recordstack/records-api/internal/infrastructure/db/sqlite"
	"github.com/recordstack/records-api/internal/infrastructure/queue"
	"github.com/recordstack/records-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Records API
// @version         1.0
// @description     Demo CRUD + auth + background-task API backed by SQLite.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Missing JWT_SECRET lands here: refuse to start.
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Connect(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("record store failed")
	}

	auditService := service.NewAuditService(audit.NewWriter(cfg.AuditLogPath))
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, dispatcher, cfg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("records api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
