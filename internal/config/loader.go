package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pillowFile = "pillow.yaml"

// LoadPillow loads the pillow tower configuration.
// Search order: customPath -> ~/.arcade/configs/pillow.yaml -> ./configs/pillow.yaml -> embedded default.
// Keys missing from a file keep their built-in values.
func LoadPillow(customPath string) (PillowConfig, error) {
	cfg := DefaultPillowConfig()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, validate(cfg, customPath)
	}

	for _, path := range []string{userConfigPath(pillowFile), filepath.Join("configs", pillowFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultPillowConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && validate(candidate, path) == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultPillowYAML, &cfg); err != nil {
		return DefaultPillowConfig(), nil
	}
	return cfg, nil
}

// validate checks the simulation parameters and the display scale.
func validate(cfg PillowConfig, source string) error {
	if err := cfg.Params().Validate(); err != nil {
		return fmt.Errorf("config: %s: %w", source, err)
	}
	if cfg.Display.CellWidth <= 0 || cfg.Display.CellHeight <= 0 {
		return fmt.Errorf("config: %s: cell size must be positive (%gx%g)",
			source, cfg.Display.CellWidth, cfg.Display.CellHeight)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPillowPreset modifies the config based on a difficulty preset.
func ApplyPillowPreset(cfg *PillowConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 7
		cfg.Collision.EarlyDetectionPixels = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 3
		cfg.Tower.SwayAngle *= 1.5
	}
}
