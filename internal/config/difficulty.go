package config

import "github.com/vovakirdan/pillow-tower/internal/core"

// DifficultyManager scales the tower sway with score or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the sway speed for the current level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Sway returns the sway amplitude for the current level.
func (d *DifficultyManager) Sway(baseAngle float64, score int, ticks int) float64 {
	return baseAngle * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SwayMultiplier)
}
