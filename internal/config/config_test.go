package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultKitchenConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("kitchen"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultKitchenConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted from DefaultKitchenConfig:\n%+v\n%+v", cfg, want)
	}
}

func TestLoadKitchenCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitchen.yaml")
	data := []byte("session:\n  duration_secs: 90\nmenu: salad_bar\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKitchen(path)
	if err != nil {
		t.Fatalf("LoadKitchen: %v", err)
	}
	if cfg.Session.DurationSecs != 90 || cfg.Menu != "salad_bar" {
		t.Errorf("overrides not applied: %+v", cfg.Session)
	}
	if cfg.Session.TicksPerSecond != 60 || cfg.Timings.CookSecs != 4 {
		t.Errorf("unset values should keep defaults, got %+v %+v", cfg.Session, cfg.Timings)
	}
	if len(cfg.Layout.Stations) != 5 {
		t.Errorf("expected 5 stations, got %d", len(cfg.Layout.Stations))
	}
}

func TestLoadKitchenCustomPathErrors(t *testing.T) {
	if _, err := LoadKitchen(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("session: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKitchen(path); err == nil {
		t.Error("expected an error for invalid yaml")
	}
}

func TestApplyKitchenPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		duration int
		chop     float64
		cook     float64
		penalty  int
	}{
		{DifficultyEasy, 420, 2, 4, 5},
		{DifficultyNormal, 300, 3, 4, 5},
		{DifficultyHard, 200, 3, 5, 10},
		{DifficultyFixed, 300, 3, 4, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultKitchenConfig()
			ApplyKitchenPreset(&cfg, tt.preset)
			if cfg.Session.DurationSecs != tt.duration || cfg.Timings.ChopSecs != tt.chop ||
				cfg.Timings.CookSecs != tt.cook || cfg.Orders.WrongOrderPenalty != tt.penalty {
				t.Errorf("unexpected config %+v %+v %+v", cfg.Session, cfg.Timings, cfg.Orders)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(s); err != nil || string(p) != s {
			t.Errorf("ParsePreset(%q) = %q, %v", s, p, err)
		}
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset should be normal, got %q %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
