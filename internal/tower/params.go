// Package tower implements the pillow stacking simulation: a small deterministic
// state engine that lowers, drops, lands, deflects and loses pillows, and sways the
// settled tower about a ground pivot.
//
// The package has no rendering, audio or terminal dependencies. Hosts drive it with
// Tick and pointer calls and observe it through a Listener and Snapshot.
package tower

import (
	"errors"
	"fmt"
)

// Simulation constants. Distances are in pixels, times in milliseconds unless noted.
const (
	FeatherCap = 46 // Feathers needed for a full-size pillow

	Gravity = 800.0 // px/s²

	LowerDuration       = 800.0 // Lowering ease and line retraction
	CutRetractDuration  = 800.0 // Upper segment pulls back after a cut
	MissRetractDuration = 600.0 // Line eases back to the top after a miss

	LandingTolerance = 5.0  // Bottom edge may stop this far above the target
	CollisionMargin  = 20.0 // Inset of the tight landing window on each side
	TapPadding       = 20.0 // Extra tap area around the floating pillow
	MissOverrun      = 50.0 // Fall this far past the viewport bottom to count as a miss

	DeflectSpin  = 3.0   // rad/s
	DeflectDrift = 100.0 // px/s

	LineTrailGap       = 20.0 // Lower segment trails this far above the falling pillow
	LineTrailSmoothing = 0.3  // Per-frame exponential smoothing of the lower segment

	FirstDropDepth   = 80.0 // First pillow hovers this far above the ground
	HoverBase        = 50.0
	HoverPerDrop     = 10.0
	HoverMax         = 80.0
	DefaultLives     = 5
	sideSwayFreq     = 2.0 // rad/s of the idle pillow's horizontal wobble
	sideSwayBaseAmpl = 1.0
)

// ErrInvalidParams is returned when a parameter set cannot drive the simulation.
var ErrInvalidParams = errors.New("tower: invalid params")

// Params are the tunable numbers of the simulation. They are hot-swappable
// between ticks through Engine.SetParams.
type Params struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64

	SwayAngle float64 // Amplitude in radians
	SwaySpeed float64 // Angular frequency in rad/s

	GroundHeight         float64 // Ground distance from the viewport bottom
	EarlyDetectionPixels float64 // Extends the landing trigger zone upwards

	Lives int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinWidth:             25,
		MaxWidth:             50,
		MinHeight:            10,
		MaxHeight:            20,
		SwayAngle:            0.02,
		SwaySpeed:            1.5,
		GroundHeight:         100,
		EarlyDetectionPixels: 0,
		Lives:                DefaultLives,
	}
}

// Validate reports whether p can drive the simulation.
func (p Params) Validate() error {
	switch {
	case p.MinWidth <= 0 || p.MinHeight <= 0:
		return fmt.Errorf("%w: minimum size must be positive (%gx%g)", ErrInvalidParams, p.MinWidth, p.MinHeight)
	case p.MaxWidth < p.MinWidth:
		return fmt.Errorf("%w: max width %g below min width %g", ErrInvalidParams, p.MaxWidth, p.MinWidth)
	case p.MaxHeight < p.MinHeight:
		return fmt.Errorf("%w: max height %g below min height %g", ErrInvalidParams, p.MaxHeight, p.MinHeight)
	case p.GroundHeight < 0:
		return fmt.Errorf("%w: negative ground height %g", ErrInvalidParams, p.GroundHeight)
	case p.EarlyDetectionPixels < 0:
		return fmt.Errorf("%w: negative early detection %g", ErrInvalidParams, p.EarlyDetectionPixels)
	case p.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidParams, p.Lives)
	}
	return nil
}
