package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	StorePath       string `yaml:"store_path"`
	RefreshMinutes  int    `yaml:"refresh_minutes"`
	MaxSlots        int    `yaml:"max_slots"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`
	ReloadBurst     int    `yaml:"reload_burst"`
	SchedulerBuffer int    `yaml:"scheduler_buffer"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StorePath:       "baring_widget.db",
		RefreshMinutes:  30,
		MaxSlots:        7,
		LogLevel:        "info",
		LogFile:         "",
		ReloadBurst:     3,
		SchedulerBuffer: 64,
	}
}

func (c RuntimeConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMinutes) * time.Minute
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("BARING_STORE_PATH"); ok {
		cfg.StorePath = v
	}
	if v, ok := getEnvInt("BARING_REFRESH_MINUTES"); ok && v > 0 {
		cfg.RefreshMinutes = v
	}
	if v, ok := getEnvInt("BARING_MAX_SLOTS"); ok && v > 0 {
		cfg.MaxSlots = v
	}
	if v, ok := getEnvString("BARING_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("BARING_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvInt("BARING_RELOAD_BURST"); ok && v > 0 {
		cfg.ReloadBurst = v
	}
	if v, ok := getEnvInt("BARING_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

// LoadRuntimeConfigFile overlays the YAML file at path onto base. Keys the
// file omits, and non-positive numbers, keep the base value.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.RefreshMinutes <= 0 {
		cfg.RefreshMinutes = base.RefreshMinutes
	}
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = base.MaxSlots
	}
	if cfg.ReloadBurst <= 0 {
		cfg.ReloadBurst = base.ReloadBurst
	}
	if cfg.SchedulerBuffer <= 0 {
		cfg.SchedulerBuffer = base.SchedulerBuffer
	}
	return cfg, nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
