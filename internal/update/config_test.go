package update

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.RefreshMinutes != 30 || cfg.RefreshInterval() != 30*time.Minute {
		t.Fatalf("unexpected refresh default: %+v", cfg)
	}
	if cfg.MaxSlots != 7 || cfg.SchedulerBuffer != 64 || cfg.ReloadBurst != 3 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.StorePath != "baring_widget.db" || cfg.LogLevel != "info" || cfg.LogFile != "" {
		t.Fatalf("unexpected path defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("BARING_STORE_PATH", "state/widgets.db")
	t.Setenv("BARING_REFRESH_MINUTES", "15")
	t.Setenv("BARING_MAX_SLOTS", "5")
	t.Setenv("BARING_LOG_LEVEL", "debug")
	t.Setenv("BARING_LOG_FILE", "baring.log")
	t.Setenv("BARING_RELOAD_BURST", "1")
	t.Setenv("BARING_SCHEDULER_BUFFER", "128")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.StorePath != "state/widgets.db" || cfg.LogFile != "baring.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected string overrides: %+v", cfg)
	}
	if cfg.RefreshMinutes != 15 || cfg.MaxSlots != 5 {
		t.Fatalf("unexpected widget overrides: %+v", cfg)
	}
	if cfg.ReloadBurst != 1 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected scheduler overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("BARING_REFRESH_MINUTES", "soon")
	t.Setenv("BARING_MAX_SLOTS", "0")
	t.Setenv("BARING_SCHEDULER_BUFFER", "-4")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("expected defaults for invalid env, got %+v", cfg)
	}
}

func TestLoadRuntimeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baring.yaml")
	doc := "store_path: /tmp/w.db\nmax_slots: 4\nrefresh_minutes: 0\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadRuntimeConfigFile(path, DefaultRuntimeConfig())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorePath != "/tmp/w.db" || cfg.MaxSlots != 4 {
		t.Fatalf("unexpected file overrides: %+v", cfg)
	}
	if cfg.RefreshMinutes != 30 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("expected base for omitted or invalid keys: %+v", cfg)
	}
}

func TestLoadRuntimeConfigFileErrors(t *testing.T) {
	base := DefaultRuntimeConfig()
	_, err := LoadRuntimeConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), base)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_slots: [1, 2"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadRuntimeConfigFile(path, base)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != base {
		t.Fatalf("expected base returned on error, got %+v", cfg)
	}
}
