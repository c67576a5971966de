// Command migrate manages the feedback database schema from the command
// line. Migration SQL ships embedded in the binary, so the tool needs only
// database connectivity.
//
// Usage:
//
//	migrate up              apply all pending migrations
//	migrate down            roll back a single migration
//	migrate steps N         migrate N versions forward (or -N back)
//	migrate version         print the current schema version
//	migrate force V         mark version V as applied without running SQL
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/feedbacklab/go-feedback-backend/internal/config"
	"github.com/feedbacklab/go-feedback-backend/internal/repo"
	"github.com/feedbacklab/go-feedback-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("versioned migrations require the postgres driver")
	}

	m, err := repo.NewMigrator(cfg.DB.URL())
	if err != nil {
		log.Fatal().Err(err).Msg("create migrator failed")
	}
	defer m.Close()

	if err := run(m, args); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("migration command failed")
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		return noChangeOK(m.Up())
	case "down":
		return noChangeOK(m.Steps(-1))
	case "steps":
		if len(args) < 2 {
			return errors.New("steps requires a count")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		return noChangeOK(m.Steps(n))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %v)\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return m.Force(v)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// noChangeOK treats an already up-to-date schema as success.
func noChangeOK(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("schema is up to date")
		return nil
	}
	return err
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|steps N|version|force V>")
}
