package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("UPLOAD_MAX_RESUME_BYTES", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %s", cfg.App.Addr())
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Fatalf("expected redis backend, got %s", cfg.Session.Backend)
	}
	if cfg.Upload.MaxResumeBytes != 5<<20 {
		t.Fatalf("unexpected upload limit %d", cfg.Upload.MaxResumeBytes)
	}
	if cfg.Auth.TokenTTL() != time.Hour {
		t.Fatalf("unexpected token ttl %s", cfg.Auth.TokenTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memory")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Fatalf("expected memory backend, got %s", cfg.Session.Backend)
	}
	if cfg.Postgres.RunMigrations {
		t.Fatal("expected migrations disabled")
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("expected fallback bcrypt cost, got %d", cfg.Auth.BcryptCost)
	}
}

func TestLoadRejectsUnknownSessionBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memcached")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
