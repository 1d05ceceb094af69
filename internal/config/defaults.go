package config

import (
	_ "embed"
)

//go:embed defaults/pillow.yaml
var defaultPillowYAML []byte

// DefaultPillowConfig returns the built-in configuration, sized for a terminal
// where one cell is 4x8 pixels.
func DefaultPillowConfig() PillowConfig {
	return PillowConfig{
		Pillow: PillowSize{
			MinWidth:  25,
			MaxWidth:  50,
			MinHeight: 10,
			MaxHeight: 20,
		},
		Tower: TowerSway{
			SwayAngle: 0.02,
			SwaySpeed: 1.5,
		},
		Floor: FloorConfig{
			GroundHeight: 16,
		},
		Gameplay: GameplayConfig{
			Lives:        5,
			FeatherBurst: 23,
		},
		Display: DisplayConfig{
			CellWidth:    4,
			CellHeight:   8,
			FollowMargin: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SwayMultiplier:  2.0,
			},
		},
	}
}
