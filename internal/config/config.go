// Package config handles application configuration loading from environment
// variables. A local .env file is honored in development so the server and
// the bectl tooling share one set of values.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Site identity
	SiteURL  string // canonical base URL, no trailing slash
	SiteName string

	// Content source
	ContentDir string // root holding posts/, landings/, produtos/
	PublicDir  string // build output dir, receives sitemap.xml

	// PostgreSQL connection (theme queue)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (page cache, sessions, scroll records)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Admin console
	AdminToken string // bearer token issued by the external auth service

	// n8n automation webhook for the theme console
	WebhookURL string
}

// Load reads configuration from the environment, applying development
// defaults. A .env file in the working directory is loaded first when
// present. Returns an error if critical values are missing in production.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteURL:  envOrDefault("SITE_URL", "https://brincareducando.com.br"),
		SiteName: envOrDefault("SITE_NAME", "Brincar Educando"),

		ContentDir: envOrDefault("CONTENT_DIR", "content"),
		PublicDir:  envOrDefault("PUBLIC_DIR", "public"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "brincareducando"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "brincareducando"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AdminToken: os.Getenv("ADMIN_TOKEN"),
		WebhookURL: os.Getenv("N8N_WEBHOOK_URL"),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminToken == "" {
			return nil, fmt.Errorf("ADMIN_TOKEN must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
