// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, PDF engine) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/hojadevida/pkg/query"
)

// Supported HTML to PDF engines.
const (
	EngineChromium    = "chromium"
	EngineWKHTMLTOPDF = "wkhtmltopdf"
)

// # Configuration Schema

// Config holds all runtime configuration for the résumé site.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Admin API. It stays unmounted while AdminPasswordHash is empty.
	AdminUsername     string `env:"ADMIN_USERNAME"      envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	JWTPrivKeyPath    string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath     string `env:"JWT_PUBLIC_KEY_PATH"`

	// Static assets and uploaded media
	StaticURL  string `env:"STATIC_URL"  envDefault:"/static/"`
	StaticRoot string `env:"STATIC_ROOT" envDefault:"./web/static"`
	MediaURL   string `env:"MEDIA_URL"   envDefault:"/media/"`
	MediaRoot  string `env:"MEDIA_ROOT"  envDefault:"./media"`

	// MaxUploadBytes bounds a single admin upload.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// HTML to PDF conversion
	PDFEngine       string        `env:"PDF_ENGINE"       envDefault:"chromium"`
	ChromePath      string        `env:"CHROME_PATH"`
	ChromeArgs      []string      `env:"CHROME_ARGS"      envSeparator:","`
	WKHTMLTOPDFPath string        `env:"WKHTMLTOPDF_PATH" envDefault:"wkhtmltopdf"`
	PDFTimeout      time.Duration `env:"PDF_TIMEOUT"      envDefault:"60s"`

	// Cross-Origin Resource Sharing for the admin API
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked 'required' is missing, or 'notEmpty' is blank.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	switch c.PDFEngine {
	case EngineChromium, EngineWKHTMLTOPDF:
	default:
		return fmt.Errorf("config: unsupported PDF_ENGINE %q", c.PDFEngine)
	}

	if !strings.HasPrefix(c.StaticURL, "/") || !strings.HasPrefix(c.MediaURL, "/") {
		return fmt.Errorf("config: STATIC_URL and MEDIA_URL must be absolute paths")
	}

	if c.AdminEnabled() && (c.JWTPrivKeyPath == "" || c.JWTPubKeyPath == "") {
		return fmt.Errorf("config: JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH are required when ADMIN_PASSWORD_HASH is set")
	}

	return nil
}

// AdminEnabled reports whether the admin API should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
