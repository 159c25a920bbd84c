// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	// DBSource is the Postgres connection string. Required.
	DBSource string
	// Port is the HTTP listen port, without the colon. Defaults to 8080.
	Port string
	// Env names the deployment environment. Defaults to "development".
	Env string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBSource: os.Getenv("DB_SOURCE"),
		Port:     envOr("SERVER_PORT", "8080"),
		Env:      envOr("ENVIRONMENT", "development"),
	}
	if cfg.DBSource == "" {
		return nil, fmt.Errorf("DB_SOURCE environment variable is required")
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
