package tower

import "math"

// GrowthSize returns the floating pillow's size after collecting feathers.
// The count is clamped to [0, FeatherCap]; a full pillow is exactly max size.
func GrowthSize(feathers int, p Params) (width, height float64) {
	if feathers <= 0 {
		return p.MinWidth, p.MinHeight
	}
	if feathers >= FeatherCap {
		return p.MaxWidth, p.MaxHeight
	}
	ratio := float64(feathers) / FeatherCap
	width = math.Min(p.MinWidth+(p.MaxWidth-p.MinWidth)*ratio, p.MaxWidth)
	height = math.Min(p.MinHeight+(p.MaxHeight-p.MinHeight)*ratio, p.MaxHeight)
	return width, height
}

// SwayAngle returns the tower rotation at t seconds.
func SwayAngle(t, speed, amplitude float64) float64 {
	return math.Sin(t*speed) * amplitude
}

// Rotate turns (x, y) about (px, py) by angle radians.
func Rotate(x, y, px, py, angle float64) (float64, float64) {
	dx, dy := x-px, y-py
	sin, cos := math.Sincos(angle)
	return px + dx*cos - dy*sin, py + dx*sin + dy*cos
}

// CrossesLine tests the pointer segment (x1,y1)→(x2,y2) against the vertical
// line at lineX spanning [top, bottom]. It returns the crossing y when the
// segment straddles the line inside that extent. A segment with no horizontal
// movement never crosses.
func CrossesLine(x1, y1, x2, y2, lineX, top, bottom float64) (float64, bool) {
	straddles := (x1 <= lineX && lineX <= x2) || (x2 <= lineX && lineX <= x1)
	if !straddles || x2 == x1 {
		return 0, false
	}
	t := (lineX - x1) / (x2 - x1)
	y := y1 + t*(y2-y1)
	if y < top || y > bottom {
		return 0, false
	}
	return y, true
}

// LineCutDetector remembers the previous pointer sample of a drag so each move
// can be tested as a segment.
type LineCutDetector struct {
	tracking bool
	lastX    float64
	lastY    float64
}

// Begin starts a drag at (x, y).
func (d *LineCutDetector) Begin(x, y float64) {
	d.tracking = true
	d.lastX, d.lastY = x, y
}

// Move advances the drag to (x, y) and reports a crossing of the line at lineX
// within [top, bottom]. Moves outside a drag are ignored.
func (d *LineCutDetector) Move(x, y, lineX, top, bottom float64) (float64, bool) {
	if !d.tracking {
		return 0, false
	}
	cutY, ok := CrossesLine(d.lastX, d.lastY, x, y, lineX, top, bottom)
	d.lastX, d.lastY = x, y
	return cutY, ok
}

// End finishes the drag.
func (d *LineCutDetector) End() { d.tracking = false }

// Tracking reports whether a drag is in progress.
func (d *LineCutDetector) Tracking() bool { return d.tracking }
