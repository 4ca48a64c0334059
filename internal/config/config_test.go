package config_test

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/csg33k/underwriteai/internal/config"
)

var keys = []string{
	"PORT", "STORE_DRIVER", "DB_PATH", "SETTINGS_PATH", "EXTRACTION_DELAY",
	"SCORING_DELAY", "TIMEZONE", "LOG_LEVEL", "ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != ":8080" || cfg.StoreDriver != config.DriverMemory || cfg.DBPath != "underwrite.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ExtractionDelay+cfg.ScoringDelay < 2*time.Second {
		t.Errorf("delays %v + %v under two seconds", cfg.ExtractionDelay, cfg.ScoringDelay)
	}
	if cfg.Location.String() != "America/Toronto" {
		t.Errorf("location = %v", cfg.Location)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("EXTRACTION_DELAY", "5ms")
	t.Setenv("SCORING_DELAY", "0s")
	t.Setenv("TIMEZONE", "America/Vancouver")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.StoreDriver != config.DriverSQLite {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ExtractionDelay != 5*time.Millisecond || cfg.ScoringDelay != 0 {
		t.Errorf("delays = %v %v", cfg.ExtractionDelay, cfg.ScoringDelay)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if got := strings.Join(cfg.AllowedOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("origins = %q", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"PORT", "http", "PORT"},
		{"STORE_DRIVER", "mongo", "STORE_DRIVER"},
		{"EXTRACTION_DELAY", "soon", "EXTRACTION_DELAY"},
		{"SCORING_DELAY", "-1s", "SCORING_DELAY"},
		{"TIMEZONE", "Mars/Olympus", "TIMEZONE"},
		{"LOG_LEVEL", "loud", "LOG_LEVEL"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name %s", err, tc.want)
			}
		})
	}
}
