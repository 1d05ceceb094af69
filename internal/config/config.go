// Package config loads the pillow tower's YAML configuration and manages
// difficulty progression.
package config

import "github.com/vovakirdan/pillow-tower/internal/tower"

// PillowConfig contains all configuration for the pillow tower game.
type PillowConfig struct {
	Pillow     PillowSize       `yaml:"pillow"`
	Tower      TowerSway        `yaml:"tower"`
	Floor      FloorConfig      `yaml:"floor"`
	Collision  CollisionConfig  `yaml:"collision"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PillowSize bounds the floating pillow's growth, in pixels.
type PillowSize struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// TowerSway defines the stack's rigid sway.
type TowerSway struct {
	SwayAngle float64 `yaml:"sway_angle"` // Radians
	SwaySpeed float64 `yaml:"sway_speed"` // Radians per second
}

// FloorConfig places the ground.
type FloorConfig struct {
	GroundHeight float64 `yaml:"ground_height"` // Pixels above the viewport bottom
}

// CollisionConfig tunes landing detection.
type CollisionConfig struct {
	EarlyDetectionPixels float64 `yaml:"early_detection_pixels"`
}

// GameplayConfig defines lives and feather bursts.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	FeatherBurst int `yaml:"feather_burst"` // Feathers released per burst
}

// DisplayConfig maps the pixel simulation onto terminal cells.
type DisplayConfig struct {
	CellWidth    float64 `yaml:"cell_width"`    // Pixels per column
	CellHeight   float64 `yaml:"cell_height"`   // Pixels per row
	FollowMargin float64 `yaml:"follow_margin"` // Pixels kept visible above the tower top
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines how far the sway grows at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to sway speed at max difficulty
	SwayMultiplier  float64 `yaml:"sway_multiplier"`  // Added to sway amplitude at max difficulty
}

// Params converts the configuration into simulation parameters.
func (c PillowConfig) Params() tower.Params {
	return tower.Params{
		MinWidth:             c.Pillow.MinWidth,
		MaxWidth:             c.Pillow.MaxWidth,
		MinHeight:            c.Pillow.MinHeight,
		MaxHeight:            c.Pillow.MaxHeight,
		SwayAngle:            c.Tower.SwayAngle,
		SwaySpeed:            c.Tower.SwaySpeed,
		GroundHeight:         c.Floor.GroundHeight,
		EarlyDetectionPixels: c.Collision.EarlyDetectionPixels,
		Lives:                c.Gameplay.Lives,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
