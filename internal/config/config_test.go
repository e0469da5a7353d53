package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: pakcuisine
  password: secret
  database: pakcuisine
rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
http:
  port: 8080
auth:
  jwt_secret: test-secret
  token_ttl_hours: 12
payments:
  currency: pkr
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTLHours != 12 {
		t.Errorf("expected token TTL 12, got %d", cfg.Auth.TokenTTLHours)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("expected default token TTL 24, got %d", cfg.Auth.TokenTTLHours)
	}
	if cfg.Payments.Currency != "pkr" {
		t.Errorf("expected default currency pkr, got %s", cfg.Payments.Currency)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  password: from-file
auth:
  jwt_secret: from-file
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Password != "from-env" {
		t.Errorf("expected env override for DB password, got %s", cfg.Database.Password)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("expected env override for JWT secret, got %s", cfg.Auth.JWTSecret)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
