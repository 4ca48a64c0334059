// Package config reads the server's runtime configuration from the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/csg33k/underwriteai/internal/adapters/simulator"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Port            string
	StoreDriver     string
	DBPath          string
	SettingsPath    string
	ExtractionDelay time.Duration
	ScoringDelay    time.Duration
	Timezone        string
	Location        *time.Location
	LogLevel        slog.Level
	AllowedOrigins  []string
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// Load reads environment variables and returns a validated Config.
func Load() (Config, error) {
	cfg := Config{
		Port:           envOrDefault("PORT", "8080"),
		StoreDriver:    strings.ToLower(envOrDefault("STORE_DRIVER", DriverMemory)),
		DBPath:         envOrDefault("DB_PATH", "underwrite.db"),
		SettingsPath:   strings.TrimSpace(os.Getenv("SETTINGS_PATH")),
		Timezone:       envOrDefault("TIMEZONE", "America/Toronto"),
		AllowedOrigins: parseList("ALLOWED_ORIGINS", []string{"*"}),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT %q: not a number", cfg.Port)
	}
	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER %q: want %s or %s", cfg.StoreDriver, DriverMemory, DriverSQLite)
	}

	var err error
	if cfg.ExtractionDelay, err = durationOrDefault("EXTRACTION_DELAY", simulator.DefaultExtractionDelay); err != nil {
		return Config{}, err
	}
	if cfg.ScoringDelay, err = durationOrDefault("SCORING_DELAY", simulator.DefaultScoringDelay); err != nil {
		return Config{}, err
	}
	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("TIMEZONE %q: %w", cfg.Timezone, err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
