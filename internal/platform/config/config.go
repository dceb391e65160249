// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package config handles application configuration loading and validation.

It reads environment variables into a strongly-typed struct using struct tags,
providing defaults for local development and strict requirements for
infrastructure secrets (Database, Redis).

Environment Variables:

  - SERVER_PORT: HTTP listen port (default 8080).
  - APP_ENV: Deployment environment (development/staging/production).
  - DATABASE_URL: PostgreSQL connection string (required).
  - REDIS_URL: Redis connection string (required).
  - GEOGRAPHY_PATH: Location of the administrative-division reference file.
  - TAXONOMY_PATH: Location of the product taxonomy reference file.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Structure

// Config holds all runtime configuration for the application.
type Config struct {
	// Server settings
	ServerPort  int    `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	// Database settings
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Cache settings
	RedisURL string `env:"REDIS_URL,required"`

	// Reference data settings
	GeographyPath string `env:"GEOGRAPHY_PATH" envDefault:"./data/reference/geography.json"`
	TaxonomyPath  string `env:"TAXONOMY_PATH" envDefault:"./data/reference/taxonomy.json"`

	// CORS settings
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Loading & Validation

/*
Load parses environment variables into a Config struct.

Returns:
  - *Config: The populated configuration
  - error: If required variables are missing or malformed
*/
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}

	return cfg, nil
}

// validate performs semantic checks beyond simple presence.
func (cfg *Config) validate() error {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.ServerPort)
	}

	switch cfg.Environment {
	case "development", "staging", "production":
		// known environments
	default:
		return fmt.Errorf("unknown environment: %q", cfg.Environment)
	}

	return nil
}

// # Environment Helpers

// IsDevelopment reports whether the app runs in a local development setup.
func (cfg *Config) IsDevelopment() bool {
	return cfg.Environment == "development"
}

// IsProduction reports whether the app runs in the production environment.
func (cfg *Config) IsProduction() bool {
	return cfg.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins configured for this deployment.
func (cfg *Config) AllowedOrigins() []string {
	return cfg.ExtraOrigins
}

// Addr returns the listen address for the HTTP server.
func (cfg *Config) Addr() string {
	return fmt.Sprintf(":%d", cfg.ServerPort)
}
