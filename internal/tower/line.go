package tower

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LineState is the suspension line's lifecycle.
type LineState int

const (
	LineIdle LineState = iota
	LineShowing
	LineCut
	LineRetracting
)

func (s LineState) String() string {
	switch s {
	case LineShowing:
		return "showing"
	case LineCut:
		return "cut"
	case LineRetracting:
		return "retracting"
	default:
		return "idle"
	}
}

// Line is the suspension line hanging from the top of the view to the floating
// pillow. After a gesture cut it splits into an upper segment that pulls back
// up and a lower segment that trails the falling pillow.
type Line struct {
	State LineState
	X     float64
	Top   float64

	// Bottom is the lower end while showing or retracting.
	Bottom float64

	// Severed is set by a gesture cut; a tap drop leaves no segments.
	Severed    bool
	CutY       float64
	UpperEnd   float64
	LowerStart float64
}

// track wraps a tween so it can be shifted when the scene is reframed.
type track struct {
	from, to float64
	duration float32
	easing   ease.TweenFunc
	elapsed  float32
	tween    *gween.Tween
	done     bool
}

func newTrack(from, to, durationMs float64, easing ease.TweenFunc) *track {
	return &track{
		from:     from,
		to:       to,
		duration: float32(durationMs),
		easing:   easing,
		tween:    gween.New(float32(from), float32(to), float32(durationMs), easing),
	}
}

// advance moves the track by dt milliseconds.
func (t *track) advance(dt float64) float64 {
	if t.done {
		return t.to
	}
	t.elapsed += float32(dt)
	v, finished := t.tween.Update(float32(dt))
	if finished {
		t.done = true
		return t.to
	}
	return float64(v)
}

// shift moves both endpoints by d, keeping progress.
func (t *track) shift(d float64) {
	t.from += d
	t.to += d
	t.tween = gween.New(float32(t.from), float32(t.to), t.duration, t.easing)
	if t.elapsed > 0 {
		t.tween.Update(t.elapsed)
	}
}

// Easings used by the line. Lowering shares the quadratic ease-out with the
// line that carries the pillow down.
var (
	easeLower       = ease.OutQuad
	easeCutRetract  = ease.InCubic
	easeMissRetract = ease.OutCubic
)

// lowerY evaluates the lowering curve p(2-p) at elapsed milliseconds.
func lowerY(start, target, elapsed float64) float64 {
	if elapsed >= LowerDuration {
		return target
	}
	if elapsed <= 0 {
		return start
	}
	return float64(easeLower(float32(elapsed), float32(start), float32(target-start), LowerDuration))
}

// lowerProgress returns how far along the descent the pillow is, from 0 to 1.
func lowerProgress(elapsed float64) float64 {
	p := math.Min(math.Max(elapsed/LowerDuration, 0), 1)
	return p * (2 - p)
}
