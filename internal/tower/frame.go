package tower

// WorldFrame maps between scene coordinates (y grows downwards, ground at
// GroundLevel) and screen coordinates. It holds no animation state; the scroll
// offset is an external decision.
type WorldFrame struct {
	width        float64
	height       float64
	groundHeight float64
	scrollOffset float64
}

// NewWorldFrame creates a frame for a viewport of the given size.
func NewWorldFrame(width, height, groundHeight float64) WorldFrame {
	return WorldFrame{width: width, height: height, groundHeight: groundHeight}
}

// Width returns the viewport width.
func (f WorldFrame) Width() float64 { return f.width }

// Height returns the viewport height.
func (f WorldFrame) Height() float64 { return f.height }

// CenterX returns the horizontal centre of the viewport.
func (f WorldFrame) CenterX() float64 { return f.width / 2 }

// GroundLevel returns the scene y of the ground surface.
func (f WorldFrame) GroundLevel() float64 {
	return f.height - f.groundHeight
}

// ScrollOffset returns the current vertical scroll.
func (f WorldFrame) ScrollOffset() float64 { return f.scrollOffset }

// SetScrollOffset moves the camera. Positive values reveal space above the ground.
func (f *WorldFrame) SetScrollOffset(offset float64) { f.scrollOffset = offset }

// SetGroundHeight changes the ground distance from the viewport bottom.
func (f *WorldFrame) SetGroundHeight(h float64) { f.groundHeight = h }

// Resize changes the viewport dimensions.
func (f *WorldFrame) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// ToScreenY maps a world height above the ground to a screen y.
func (f WorldFrame) ToScreenY(worldY float64) float64 {
	return f.GroundLevel() - worldY + f.scrollOffset
}

// SceneToScreenY maps a scene y to a screen y.
func (f WorldFrame) SceneToScreenY(y float64) float64 {
	return y + f.scrollOffset
}

// VisibleTop returns the scene y at the top edge of the viewport.
func (f WorldFrame) VisibleTop() float64 {
	return -f.scrollOffset
}

// VisibleBottom returns the scene y at the bottom edge of the viewport.
func (f WorldFrame) VisibleBottom() float64 {
	return f.height - f.scrollOffset
}
