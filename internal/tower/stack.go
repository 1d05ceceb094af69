package tower

// Pillow is a settled pillow. Size is frozen at landing; position and rotation are
// recomputed by the sway every frame.
type Pillow struct {
	Width    float64
	Height   float64
	X        float64
	Y        float64
	Rotation float64
}

// Top returns the y of the pillow's upper edge, ignoring rotation.
func (p Pillow) Top() float64 { return p.Y - p.Height/2 }

// Bottom returns the y of the pillow's lower edge, ignoring rotation.
func (p Pillow) Bottom() float64 { return p.Y + p.Height/2 }

// Stack is the settled tower, bottom to top.
//
// offsets[0] is the absolute x of the base pillow and offsets[i] the landing
// offset of pillow i from pillow i-1. Before the first landing offsets holds the
// single reserved base slot.
type Stack struct {
	pillows []Pillow
	offsets []float64
	heights []float64
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{offsets: []float64{0}}
}

// Len returns the number of settled pillows.
func (s *Stack) Len() int { return len(s.pillows) }

// Empty reports whether nothing has landed yet.
func (s *Stack) Empty() bool { return len(s.pillows) == 0 }

// Top returns the topmost pillow.
func (s *Stack) Top() (Pillow, bool) {
	if len(s.pillows) == 0 {
		return Pillow{}, false
	}
	return s.pillows[len(s.pillows)-1], true
}

// At returns pillow i.
func (s *Stack) At(i int) Pillow { return s.pillows[i] }

// Offset returns connection offset i.
func (s *Stack) Offset(i int) float64 { return s.offsets[i] }

// Height returns the frozen height of pillow i.
func (s *Stack) Height(i int) float64 { return s.heights[i] }

// Offsets returns a copy of the connection offsets.
func (s *Stack) Offsets() []float64 {
	return append([]float64(nil), s.offsets...)
}

// Heights returns a copy of the frozen heights.
func (s *Stack) Heights() []float64 {
	return append([]float64(nil), s.heights...)
}

// Pillows returns a copy of the settled pillows.
func (s *Stack) Pillows() []Pillow {
	return append([]Pillow(nil), s.pillows...)
}

// push records a landed pillow. The first landing replaces the reserved base slot
// with the absolute x; later ones append their offset from the pillow below.
func (s *Stack) push(p Pillow, targetX float64) {
	if len(s.pillows) == 0 {
		s.offsets[0] = p.X
	} else {
		s.offsets = append(s.offsets, p.X-targetX)
	}
	s.heights = append(s.heights, p.Height)
	s.pillows = append(s.pillows, p)
}

// RestPosition returns pillow i's unrotated centre for the given ground level:
// x from the cumulative offsets, y with every pillow touching the one below.
func (s *Stack) RestPosition(i int, groundLevel float64) (x, y float64) {
	for j := 0; j <= i; j++ {
		x += s.offsets[j]
	}
	below := 0.0
	for j := 0; j < i; j++ {
		below += s.heights[j]
	}
	return x, groundLevel - below - s.heights[i]/2
}

// setPose overwrites pillow i's position and rotation.
func (s *Stack) setPose(i int, x, y, rotation float64) {
	s.pillows[i].X = x
	s.pillows[i].Y = y
	s.pillows[i].Rotation = rotation
}

// TopY returns the scene y of the tower's upper edge, or groundLevel when empty.
func (s *Stack) TopY(groundLevel float64) float64 {
	y := groundLevel
	for _, h := range s.heights {
		y -= h
	}
	return y
}
