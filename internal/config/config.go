// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Plain environment variables with built-in defaults — no file at
//     all. The assistant must start with zero setup, so unlike a server
//     deployment the config file is optional.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by
// the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage is embedded (not a pointer) so its fields are accessible
	// as cfg.Storage.Backend / cfg.Storage.Path.
	Storage `yaml:"storage"`
}

// Storage selects and configures the persistence backend.
// Nested under storage: in the YAML file.
type Storage struct {
	// Backend picks the implementation: "file" (versioned JSON, the
	// default) or "sqlite".
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`

	// Path is where the book is persisted: the JSON file path for the
	// file backend, the database file path for sqlite.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"addressbook.json"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name follows the Go convention: "Must" functions are allowed to
// terminate on failure, so callers never see an error — if MustLoad
// returns, the config is valid.
func MustLoad() *Config {
	// ── Source 1: environment variable ───────────────────────────────
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ──────────────────────────────────
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// ── Source 3: no file — env vars and defaults only ───────────────
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// ReadConfig reads the YAML file, then applies env:"..." overrides.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
