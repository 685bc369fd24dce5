// Package config loads console configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Addr   string `env:"ADDR" envDefault:":8080"`
	WebDir string `env:"WEB_DIR" envDefault:"web"`
	Env    string `env:"ENV" envDefault:"development"`

	// Platform backend
	BackendURL     string        `env:"BACKEND_URL,required"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// Operator credential. Exactly one shared secret; either the plain
	// value or a bcrypt hash of it must be set.
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Sessions
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	DatabaseURL string        `env:"DATABASE_URL"`

	// Optional OIDC SSO
	OIDCIssuer       string `env:"OIDC_ISSUER"`
	OIDCClientID     string `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `env:"OIDC_REDIRECT_URL"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	return cfg, nil
}

// Production reports whether the console runs with production hardening
// (Secure cookies).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// SSOEnabled reports whether all OIDC settings are present.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" && c.OIDCRedirectURL != ""
}
