package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("BAR_FINDER_TEST_KEY", "  value  ")
	if got := Get("BAR_FINDER_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}

	t.Setenv("BAR_FINDER_TEST_KEY", "   ")
	if got := Get("BAR_FINDER_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"VENUES_SOURCE", "VENUES_PATH", "DATABASE_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "DISTANCE_FORMULA"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.VenuesSource != "file" || cfg.VenuesPath != "data/bars.json" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DistanceFormula != "haversine" || cfg.DatabaseURL != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VENUES_SOURCE", "Postgres")
	t.Setenv("PORT", "9090")
	t.Setenv("DISTANCE_FORMULA", "cosines")

	cfg := FromEnv()
	if cfg.VenuesSource != "postgres" || cfg.Port != "9090" || cfg.DistanceFormula != "cosines" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	loaded, err := LoadEnv()
	if err != nil || loaded {
		t.Fatalf("LoadEnv without .env = (%v, %v), want (false, nil)", loaded, err)
	}

	t.Setenv("BAR_FINDER_DOTENV_KEY", "")
	os.Unsetenv("BAR_FINDER_DOTENV_KEY")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAR_FINDER_DOTENV_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	loaded, err = LoadEnv()
	if err != nil || !loaded {
		t.Fatalf("LoadEnv with .env = (%v, %v), want (true, nil)", loaded, err)
	}
	if got := os.Getenv("BAR_FINDER_DOTENV_KEY"); got != "from-file" {
		t.Fatalf("BAR_FINDER_DOTENV_KEY = %q, want from-file", got)
	}
}
