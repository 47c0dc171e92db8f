// main is the entry point of the students-cli application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (defaults, optional YAML file, env overrides)
//  2. Initialise the logger
//  3. Open the storage backend (flat text file or SQLite)
//  4. Run the interactive menu loop until Exit
//
// RUNNING IT:
//
//	go run ./cmd/students-cli
//
// runs on the built-in defaults (flat file "students.txt" in the
// working directory). A config file is optional:
//
//	go run ./cmd/students-cli --config=config/local.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/students-cli/internal/cli"
	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/storage/flatfile"
	"github.com/aanand-mishra/students-cli/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad resolves defaults, file, and environment, and fatals if
	// the result is invalid. If it returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs go to stderr so stdout carries only the menu and record
	// output — `students-cli 2>session.log` keeps the screen clean.
	log := setupLogger(cfg.Env)

	log.Info("starting students-cli",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.StorageDriver),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// Both backends satisfy the storage.Storage interface; everything
	// past this switch only sees the interface.
	var st storage.Storage
	var err error
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		st, err = sqlite.New(cfg)
	default:
		st, err = flatfile.New(cfg, log)
	}
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// ── 4. Run the Menu Loop ──────────────────────────────────────────────
	// Run blocks until the user picks Exit (or closes stdin). Every
	// mutation has already been persisted by the time it reports
	// success, so there is nothing to flush on the way out.
	app := cli.New(st, log, os.Stdin, os.Stdout)
	if err := app.Run(); err != nil {
		log.Error("session ended with an error",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("session ended")
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text in dev, JSON in staging/prod.
// All variants write to stderr.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
