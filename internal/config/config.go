// Package config handles loading and parsing application configuration.
// Values are resolved in priority order:
//
//  1. Built-in defaults (env-default tags below)
//  2. An optional YAML config file, located via either
//     CONFIG_PATH=/path/to/config.yaml or --config=/path/to/config.yaml
//  3. Environment variables (env tags), optionally preloaded from a
//     .env file in the working directory
//
// The config file is optional on purpose: the everyday invocation is a
// bare `students-cli` with no flags, which runs on the defaults.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Names accepted in StorageDriver.
const (
	DriverFlatFile = "flatfile"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by
// the corresponding environment variable (env:"...").
//
// The validate:"..." tags are checked by go-playground/validator after
// loading — better to refuse to start than to run with a driver name
// that matches no backend.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod" (anything else is treated
	// as dev by the logger).
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StorageDriver selects the persistence backend.
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"flatfile" validate:"oneof=flatfile sqlite"`

	// StoragePath is the backing file: the flat text file for the
	// flatfile driver, or the .db file for sqlite.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"students.txt" validate:"required"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. If this function
// returns, the config is valid.
func MustLoad() *Config {
	// ── Source 0: .env preload ────────────────────────────────────────
	// If a .env file exists in the working directory its values become
	// environment variables, visible to the env:"..." tags below.
	// Missing file is fine — godotenv.Load just errors and we move on.
	_ = godotenv.Load()

	// ── Source 1: environment variable ────────────────────────────────
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   students-cli --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	if configPath != "" {
		// A file was named explicitly, so it has to exist — failing
		// silently back to defaults would hide typos.
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		// cleanenv.ReadConfig reads the YAML file, then overlays any
		// env:"..." tagged values from the environment.
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err.Error())
		}
	} else {
		// No file: defaults from the env-default tags plus environment
		// overrides.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
	}

	// Check the validate:"..." tags (driver name, non-empty path).
	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("invalid config: %s", err.Error())
	}

	return &cfg
}
