package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DefaultPillowConfig().Difficulty)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{15, 0.5},
		{30, 1},
		{90, 1},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	cfg := DefaultPillowConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(100, 300); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultPillowConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.4
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Fatal("manager should be disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled manager should stay at the initial level, got %v", got)
	}

	cfg.InitialLevel = 3
	d = NewDifficultyManager(cfg)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DefaultPillowConfig().Difficulty)

	if got := d.Speed(1.5, 0, 0); got != 1.5 {
		t.Errorf("Speed at level 0 = %v, expected 1.5", got)
	}
	if got := d.Speed(1.5, 30, 0); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Speed at level 1 = %v, expected 3.0", got)
	}
	if got := d.Sway(0.02, 30, 0); math.Abs(got-0.06) > 1e-9 {
		t.Errorf("Sway at level 1 = %v, expected 0.06", got)
	}
	for score := 0; score < 40; score++ {
		if d.Sway(0.02, score+1, 0) < d.Sway(0.02, score, 0) {
			t.Fatalf("sway shrank between score %d and %d", score, score+1)
		}
	}
}
