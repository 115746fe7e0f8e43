package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeSettings(t, "tps: 30\nship: custom.yaml\nspawn_every: 500ms\ncam_width: 40\n")
	t.Setenv("SHIPWRECK_WEAPON", "spread")
	t.Setenv("SHIPWRECK_TPS", "120")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"file_value", cfg.Ship, "custom.yaml"},
		{"env_beats_file", cfg.TPS, 120},
		{"env_only", cfg.Weapon, "spread"},
		{"duration", cfg.SpawnEvery, 500 * time.Millisecond},
		{"default_kept", cfg.WindowWidth, 1280},
		{"float", cfg.CamWidth, 40.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
	t.Run("invalid_values", func(t *testing.T) {
		path := writeSettings(t, "tps: 0\n")
		_, err := Load(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Step(); got != time.Second/60 {
		t.Fatalf("unexpected step %v", got)
	}
	if got := cfg.PixelsPerUnit(); got != 20 {
		t.Fatalf("unexpected pixels per unit %g", got)
	}
}
