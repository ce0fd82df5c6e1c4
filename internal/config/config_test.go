package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Roots.Tolerance != 1e-5 {
		t.Errorf("expected root tolerance 1e-5, got %g", cfg.Roots.Tolerance)
	}
	if cfg.Linear.Omega != 1.25 {
		t.Errorf("expected omega 1.25, got %f", cfg.Linear.Omega)
	}
	if cfg.ODE.Step != 0.1 || cfg.ODE.Steps != 10 {
		t.Errorf("expected h=0.1 n=10, got h=%f n=%d", cfg.ODE.Step, cfg.ODE.Steps)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultSubdivisions(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		rule     string
		expected []int
	}{
		{"trapezoidal", []int{1, 10, 100, 1000}},
		{"simpson38", []int{3, 12, 99, 999}},
		{"weddle", []int{6, 12, 96, 996}},
	}

	for _, tt := range tests {
		got := cfg.Subdivisions(tt.rule)
		if len(got) != len(tt.expected) {
			t.Errorf("rule %s: expected %v, got %v", tt.rule, tt.expected, got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("rule %s: expected %v, got %v", tt.rule, tt.expected, got)
				break
			}
		}
	}

	if cfg.CheckSubdivisions("trapezoidal") != nil {
		t.Error("trapezoidal has no polynomial check")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numlab.yaml")
	data := []byte("linear:\n  omega: 1.1\node:\n  steps: 20\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Linear.Omega != 1.1 {
		t.Errorf("expected omega 1.1, got %f", cfg.Linear.Omega)
	}
	if cfg.ODE.Steps != 20 {
		t.Errorf("expected 20 steps, got %d", cfg.ODE.Steps)
	}
	if cfg.ODE.Step != DefaultStep {
		t.Errorf("expected default step, got %f", cfg.ODE.Step)
	}
	if cfg.Linear.Sweeps != DefaultSweeps {
		t.Errorf("expected default sweeps, got %d", cfg.Linear.Sweeps)
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numlab.yaml")
	if err := os.WriteFile(path, []byte("ode:\n  step: 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, GetPreset("coarse"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ODE.Step != 0.05 {
		t.Errorf("file should override preset step, got %f", cfg.ODE.Step)
	}
	if cfg.ODE.Steps != 4 {
		t.Errorf("preset steps should survive, got %d", cfg.ODE.Steps)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("linear:\n  omega: 2.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for omega outside (0, 2)")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Eigen.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Eigen.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Eigen.Seed)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("precise")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Roots.Tolerance != 1e-10 {
		t.Errorf("expected tolerance 1e-10, got %g", cfg.Roots.Tolerance)
	}
	if cfg.Linear.Omega != DefaultOmega {
		t.Errorf("preset should keep default omega, got %f", cfg.Linear.Omega)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	expected := []string{"classroom", "coarse", "precise"}

	if len(presets) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, presets)
	}
	for i := range expected {
		if presets[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, presets)
		}
	}
}
