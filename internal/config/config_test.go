package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "USE_BACKEND", "COUNSELING_TIMEOUT", "STORAGE_DRIVER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":4000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.Counseling.UseBackend {
		t.Fatal("backend must be opt-in")
	}
	if cfg.Counseling.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Counseling.Timeout)
	}
	if cfg.Storage.Driver != "file" {
		t.Fatalf("unexpected storage driver: %q", cfg.Storage.Driver)
	}
}

func TestLoadCustomEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("USE_BACKEND", "true")
	t.Setenv("COUNSELING_API_URL", "https://counsel.example.com")
	t.Setenv("COUNSELING_TIMEOUT", "30")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if !cfg.Counseling.UseBackend {
		t.Fatal("expected backend enabled")
	}
	if cfg.Counseling.BaseURL != "https://counsel.example.com" {
		t.Fatalf("unexpected base url: %q", cfg.Counseling.BaseURL)
	}
	if cfg.Counseling.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Counseling.Timeout)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "data/maeum.db" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if len(cfg.CORS.AllowedOrigins) != 3 {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("COUNSELING_TIMEOUT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}
