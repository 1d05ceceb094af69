// Package core provides the types shared between games and the platform:
// screen buffers, input frames and the runtime config. It has no terminal
// dependencies so games stay testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CellScale converts between terminal cells and simulation pixels. A terminal
// cell is roughly twice as tall as it is wide, so the two sizes differ.
type CellScale struct {
	CellW float64
	CellH float64
}

// ToPixels returns the pixel position of a cell's centre.
func (c CellScale) ToPixels(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.CellW, (float64(row) + 0.5) * c.CellH
}

// ToCell returns the cell containing the pixel (x, y).
func (c CellScale) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / c.CellW)), int(math.Floor(y / c.CellH))
}

// ScreenPixels returns the pixel size of a screen of cols×rows cells.
func (c CellScale) ScreenPixels(cols, rows int) (w, h float64) {
	return float64(cols) * c.CellW, float64(rows) * c.CellH
}

// SpanRect returns the cells covered by the pixel box [left,right)×[top,bottom).
// A box smaller than a cell still covers the cell holding its centre.
func (c CellScale) SpanRect(left, top, right, bottom float64) Rect {
	x0 := int(math.Round(left / c.CellW))
	x1 := int(math.Round(right / c.CellW))
	y0 := int(math.Round(top / c.CellH))
	y1 := int(math.Round(bottom / c.CellH))
	if x1 <= x0 {
		x0, _ = c.ToCell((left+right)/2, 0)
		x1 = x0 + 1
	}
	if y1 <= y0 {
		_, y0 = c.ToCell(0, (top+bottom)/2)
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
