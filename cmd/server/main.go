// Command server runs the feedback collection HTTP API.
//
// Configuration is environment driven (see internal/config); a local .env
// file is honored for development. On startup the process wires tracing,
// opens the configured store, applies schema migrations, and serves until
// SIGINT/SIGTERM, then drains in-flight requests before exiting.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/feedbacklab/go-feedback-backend/internal/config"
	httpapi "github.com/feedbacklab/go-feedback-backend/internal/http"
	"github.com/feedbacklab/go-feedback-backend/internal/observability"
	"github.com/feedbacklab/go-feedback-backend/internal/repo"
	"github.com/feedbacklab/go-feedback-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title       Feedback API
// @version     1.0
// @description Collects and serves user feedback submissions.
//
// @contact.name  API Support
// @license.name  MIT
//
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	db, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open store failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin failed")
		}
	}

	if cfg.DB.AutoMigrate {
		if err := migrateStore(cfg, db); err != nil {
			log.Fatal().Err(err).Msg("schema migration failed")
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("version", version).Str("port", cfg.Port).Str("driver", cfg.DB.Driver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}

// openStore opens the configured relational store.
func openStore(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		return repo.OpenSQLite(cfg.DB.Path)
	default:
		return repo.OpenPostgres(cfg.DB.DSN())
	}
}

// migrateStore brings the schema up to date. Postgres uses versioned SQL
// migrations; SQLite development databases rely on GORM automigrate.
func migrateStore(cfg config.Config, db *gorm.DB) error {
	if cfg.DB.Driver == config.DriverPostgres {
		return repo.RunMigrations(cfg.DB.URL())
	}
	return repo.AutoMigrate(db)
}
