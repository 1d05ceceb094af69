package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %v, expected 0", got)
	}
}

func TestCellScaleRoundTrip(t *testing.T) {
	c := CellScale{CellW: 4, CellH: 8}

	for _, cell := range [][2]int{{0, 0}, {3, 7}, {79, 23}} {
		x, y := c.ToPixels(cell[0], cell[1])
		col, row := c.ToCell(x, y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> (%v, %v) -> (%d, %d)", cell, x, y, col, row)
		}
	}

	if w, h := c.ScreenPixels(80, 24); w != 320 || h != 192 {
		t.Errorf("ScreenPixels(80, 24) = %vx%v, expected 320x192", w, h)
	}
	if col, row := c.ToCell(-1, -1); col != -1 || row != -1 {
		t.Errorf("negative pixels should map to cell (-1, -1), got (%d, %d)", col, row)
	}
}

func TestCellScaleSpanRect(t *testing.T) {
	c := CellScale{CellW: 4, CellH: 8}

	tests := []struct {
		name                     string
		left, top, right, bottom float64
		want                     Rect
	}{
		{"aligned box", 8, 16, 20, 32, NewRect(2, 2, 3, 2)},
		{"pillow sized box", 87.5, 488, 112.5, 498, NewRect(22, 61, 6, 1)},
		{"thinner than a cell", 10, 10, 11, 11, NewRect(2, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SpanRect(tt.left, tt.top, tt.right, tt.bottom); got != tt.want {
				t.Errorf("SpanRect = %+v, expected %+v", got, tt.want)
			}
		})
	}
}
