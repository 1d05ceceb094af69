package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pillow-tower/internal/tower"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPillow("")
	if err != nil {
		t.Fatalf("LoadPillow: %v", err)
	}
	if cfg != DefaultPillowConfig() {
		t.Errorf("embedded yaml drifted from DefaultPillowConfig:\n%+v\n%+v", cfg, DefaultPillowConfig())
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}

func TestLoadCustomPathKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillow.yaml")
	data := []byte("tower:\n  sway_angle: 0.05\ngameplay:\n  lives: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPillow(path)
	if err != nil {
		t.Fatalf("LoadPillow: %v", err)
	}
	if cfg.Tower.SwayAngle != 0.05 || cfg.Gameplay.Lives != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Tower.SwaySpeed != 1.5 || cfg.Pillow.MaxWidth != 50 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPillow(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pillow: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPillow(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pillow:\n  max_width: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPillow(invalid); !errors.Is(err, tower.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pillow.yaml"), []byte("floor:\n  ground_height: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPillow("")
	if err != nil {
		t.Fatalf("LoadPillow: %v", err)
	}
	if cfg.Floor.GroundHeight != 24 {
		t.Errorf("user config ignored, ground height %v", cfg.Floor.GroundHeight)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pillow.yaml"), []byte("display:\n  cell_width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPillow("")
	if err != nil {
		t.Fatalf("LoadPillow: %v", err)
	}
	if cfg.Display.CellWidth != 4 {
		t.Errorf("invalid user config should fall through to defaults, got %v", cfg.Display.CellWidth)
	}
}

func TestApplyPillowPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 7},
		{DifficultyNormal, true, 0.3, 5},
		{DifficultyHard, true, 0.7, 3},
		{DifficultyFixed, false, 0.0, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPillowConfig()
			ApplyPillowPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if err := cfg.Params().Validate(); err != nil {
				t.Errorf("preset produced invalid params: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
