package config

import (
	"fmt"
	"os"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress    string
	DatabaseDriver string
	DatabaseURL    string
	StorageBaseURL string
	LogMode        string
}

// Load reads configuration from the environment with sensible defaults.
// The sqlite driver needs no external database, so an empty environment
// yields a runnable local setup.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddress:    valueOrDefault(os.Getenv("HTTP_ADDRESS"), ":8080"),
		DatabaseDriver: valueOrDefault(os.Getenv("DATABASE_DRIVER"), "sqlite"),
		DatabaseURL:    valueOrDefault(os.Getenv("DATABASE_URL"), "coursecraft.db"),
		StorageBaseURL: valueOrDefault(os.Getenv("STORAGE_BASE_URL"), "https://storage.local"),
		LogMode:        valueOrDefault(os.Getenv("LOG_MODE"), "development"),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return cfg, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
