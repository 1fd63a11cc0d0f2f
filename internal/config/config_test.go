package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.MaxTurnRate != 45 {
		t.Errorf("expected max turn rate 45, got %f", cfg.MaxTurnRate)
	}
	if cfg.HistoryCap != 500 {
		t.Errorf("expected history cap 500, got %d", cfg.HistoryCap)
	}
	if cfg.Controller.Kp != 1.0 || cfg.Controller.Kd != 0.1 {
		t.Errorf("unexpected default gains: %+v", cfg.Controller)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")
	data := []byte("dt: 0.05\ncontroller:\n  kp: 3.5\n  target: 270\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Dt != 0.05 {
		t.Errorf("expected dt 0.05, got %f", cfg.Dt)
	}
	if cfg.Controller.Kp != 3.5 {
		t.Errorf("expected kp 3.5, got %f", cfg.Controller.Kp)
	}
	if cfg.Controller.Target != 270 {
		t.Errorf("expected target 270, got %f", cfg.Controller.Target)
	}
	// untouched fields keep defaults
	if cfg.Controller.Kd != DefaultKd {
		t.Errorf("expected default kd, got %f", cfg.Controller.Kd)
	}
	if cfg.MaxTurnRate != DefaultMaxRate {
		t.Errorf("expected default max turn rate, got %f", cfg.MaxTurnRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Controller.Ki = 0.42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Controller.Ki != 0.42 {
		t.Errorf("expected ki 0.42, got %f", loaded.Controller.Ki)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("demo")
	if cfg == nil {
		t.Fatal("expected demo preset, got nil")
	}
	if cfg.Controller.Target != 90 {
		t.Errorf("expected target 90, got %f", cfg.Controller.Target)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}
