// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the content service.
// Environment variables are parsed from the PORTFOLIO_ prefix, e.g.
// PORTFOLIO_HTTP_PORT, PORTFOLIO_FIRESTORE_PROJECT_ID.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Document store configuration. An empty project id means the store is
	// unavailable: reads serve defaults, writes return configuration errors.
	FirestoreProjectID string `envconfig:"FIRESTORE_PROJECT_ID" default:""`

	// Admin panel credentials. Both must be set for admin writes to work.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:""`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Bool("store_configured", cfg.StoreConfigured()).
		Bool("admin_configured", cfg.AdminConfigured()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config for tests without touching the environment.
func NewForTesting() *Config {
	return &Config{
		Environment:        EnvTesting,
		HTTPPort:           8080,
		FirestoreProjectID: "test-project",
		AdminUsername:      "admin",
		AdminPassword:      "admin",
	}
}

// StoreConfigured reports whether a document-store project was supplied.
func (c *Config) StoreConfigured() bool { return c.FirestoreProjectID != "" }

// AdminConfigured reports whether both admin credential strings are set.
func (c *Config) AdminConfigured() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
