package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.SiteURL == "" || cfg.ContentDir == "" {
		t.Error("site URL and content dir must have defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SITE_URL", "https://staging.example.com")
	t.Setenv("CONTENT_DIR", "/srv/content")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.SiteURL != "https://staging.example.com" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.ContentDir != "/srv/content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
}

func TestProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for default DB password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing admin token in production")
	}

	t.Setenv("ADMIN_TOKEN", "tok")
	if _, err := Load(); err != nil {
		t.Errorf("Load: %v", err)
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "127.0.0.1", Port: "8081",
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "site",
	}
	wantDSN := "postgres://u:p@db:5433/site?sslmode=disable"
	if got := cfg.DSN(); got != wantDSN {
		t.Errorf("DSN = %q, want %q", got, wantDSN)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr = %q, want 127.0.0.1:8081", got)
	}
}
