// Package repo implements the data persistence layer for the feedback
// service, backed by GORM. This file contains database bootstrapping helpers
// for PostgreSQL (the production store) and SQLite (pure Go driver, used for
// local development and tests), plus schema migration for dev setups.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feedbacklab/go-feedback-backend/internal/domain"
)

// OpenPostgres connects to PostgreSQL with the given DSN and applies
// conservative connection-pool settings. Connection parameters (host, port,
// credentials, database) are assembled by the config package.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	tunePool(db)
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
// Intended for local development and tests; production uses OpenPostgres.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if the parent directory does not exist (instead of a cryptic
	// sqlite "out of memory (14)" later).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	tunePool(db)
	return db, nil
}

// tunePool applies shared connection-pool limits to the underlying sql.DB.
func tunePool(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
}

// AutoMigrate creates or updates the feedbacks table. Production schemas are
// owned by the SQL migrations under migrations/ (applied via cmd/migrate);
// this is the dev/test shortcut and is safe to run against an up-to-date
// database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Feedback{})
}
