package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/csg33k/underwriteai/internal/adapters/settings"
	"github.com/csg33k/underwriteai/internal/domain"
)

func TestOpen_NoPathUsesDefaults(t *testing.T) {
	s, err := settings.Open("")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(context.Background())
	if got != domain.DefaultSettings() {
		t.Errorf("got %+v", got)
	}
}

func TestOpen_MissingFileUsesDefaults(t *testing.T) {
	s, err := settings.Open(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(context.Background())
	if got.Name != "Demo User" {
		t.Errorf("got %+v", got)
	}
}

func TestOpen_PartialFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("name: Alex Tremblay\nrisk_threshold: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := settings.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(context.Background())
	if got.Name != "Alex Tremblay" || got.RiskThreshold != 80 {
		t.Errorf("overrides not applied: %+v", got)
	}
	if got.Email != "demo@underwriteai.com" || got.DataRetention != 7 {
		t.Errorf("defaults lost: %+v", got)
	}
}

func TestOpen_Rejects(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"malformed", "name: [unterminated\n"},
		{"invalid value", "confidence_threshold: 140\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := settings.Open(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSave_WritesBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	s, err := settings.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v := domain.DefaultSettings()
	v.Timezone = "America/Halifax"
	v.DailyReports = true
	if err := s.Save(context.Background(), v); err != nil {
		t.Fatal(err)
	}

	reopened, err := settings.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := reopened.Get(context.Background())
	if got != v {
		t.Errorf("round trip = %+v, want %+v", got, v)
	}
}

func TestSave_InvalidKeepsPrevious(t *testing.T) {
	s, _ := settings.Open("")
	v := domain.DefaultSettings()
	v.DataRetention = 0
	if err := s.Save(context.Background(), v); err == nil {
		t.Fatal("expected validation error")
	}
	got, _ := s.Get(context.Background())
	if got.DataRetention != 7 {
		t.Errorf("DataRetention = %d, want unchanged 7", got.DataRetention)
	}
}
