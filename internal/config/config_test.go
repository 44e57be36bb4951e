package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
  env: production
auth:
  jwtSecret: file-secret
source:
  baseURL: https://puzzles.example.com/v2
game:
  allowPastDates: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.Env != "production" {
		t.Errorf("file values not applied: %+v", cfg.Server)
	}
	if !cfg.Game.AllowPastDates {
		t.Error("allowPastDates not applied")
	}
	// Untouched fields keep defaults.
	if cfg.Server.RateLimitRPS != 5 || cfg.Server.RateLimitBurst != 10 {
		t.Errorf("rate limit defaults lost: %+v", cfg.Server)
	}
	if cfg.Source.Timeout != 10*time.Second {
		t.Errorf("source timeout default lost: %v", cfg.Source.Timeout)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PUZZLE_SOURCE_URL", "https://env.example.com")
	t.Setenv("PORT", "7070")
	t.Setenv("ALLOW_PAST_DATES", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("JWT_SECRET override failed: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("PORT override failed: %q", cfg.Server.Port)
	}
	if !cfg.Game.AllowPastDates {
		t.Error("ALLOW_PAST_DATES override failed")
	}
}

func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PUZZLE_SOURCE_URL", "")

	if _, err := Load(""); err == nil {
		t.Error("expected error when jwt secret is missing")
	}

	t.Setenv("JWT_SECRET", "secret")
	if _, err := Load(""); err == nil {
		t.Error("expected error when source baseURL is missing")
	}
}
