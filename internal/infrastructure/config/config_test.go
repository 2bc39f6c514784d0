package config_test

import (
	"testing"
	"time"

	"github.com/mathdrill/backend/internal/domain/scoring"
	"github.com/mathdrill/backend/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := config.Load()

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.StoreDriver != "sqlite" || cfg.StoreDSN != "mathdrill.db" {
		t.Errorf("expected sqlite at mathdrill.db, got %s at %s", cfg.StoreDriver, cfg.StoreDSN)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("expected 120, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.AdminToken != "" {
		t.Errorf("expected disputes disabled by default, got token %q", cfg.AdminToken)
	}

	s := cfg.DefaultSettings()
	if s.MaxRetries != 2 || s.CorrectionScore != scoring.Zero {
		t.Errorf("expected 2 retries with policy 0, got %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("expected valid default settings, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("STORE_DRIVER", "bbolt")
	t.Setenv("STORE_DSN", "/tmp/progress.bolt")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("DEFAULT_MAX_RETRIES", "3")
	t.Setenv("DEFAULT_CORRECTION_POLICY", "half_n")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	if cfg.StoreDriver != "bbolt" || cfg.StoreDSN != "/tmp/progress.bolt" {
		t.Errorf("expected bbolt store, got %s at %s", cfg.StoreDriver, cfg.StoreDSN)
	}
	if cfg.AdminToken != "s3cret" {
		t.Errorf("expected admin token, got %q", cfg.AdminToken)
	}
	s := cfg.DefaultSettings()
	if s.MaxRetries != 3 || s.CorrectionScore != scoring.HalfToThePowerN {
		t.Errorf("expected 3 retries with half_n, got %+v", s)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Log.Level)
	}
}

func TestLoadVerify(t *testing.T) {
	t.Setenv("VERIFY_WORKERS", "8")

	cfg := config.LoadVerify()
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.CorpusPath != "data/chapter7.json" {
		t.Errorf("expected default corpus path, got %q", cfg.CorpusPath)
	}
}
