package pillow

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/tower"
)

// Autoplayer drives a Game for demos and headless runs. It waits until the
// floating pillow sits over the tower top, then either taps the pillow or
// drags across its line.
type Autoplayer struct {
	// Tolerance is how far off the tower top, in pixels, a drop may start.
	Tolerance float64
	// CutRatio is the share of drops done with a drag across the line.
	CutRatio float64
	// Patience is how many clickable ticks to wait before dropping anyway.
	Patience int
	// FeatherEvery queues a feather burst every n landed pillows; 0 never.
	FeatherEvery int

	rng       *rand.Rand
	waited    int
	lastBurst int
}

// NewAutoplayer returns a player with reasonable defaults.
func NewAutoplayer(seed int64) *Autoplayer {
	return &Autoplayer{
		Tolerance:    2,
		CutRatio:     0.3,
		Patience:     180,
		FeatherEvery: 5,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Next returns the input for the coming tick.
func (a *Autoplayer) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	s := g.Snapshot()
	if s.GameOver {
		in.Set(core.ActionRestart)
		return in
	}

	n := len(s.Stack)
	if a.FeatherEvery > 0 && n > 0 && n%a.FeatherEvery == 0 && n != a.lastBurst && s.HasFloating {
		a.lastBurst = n
		in.Set(core.ActionFeathers)
	}

	if !s.HasFloating || !s.Clickable {
		a.waited = 0
		return in
	}

	a.waited++
	aligned := n == 0 || math.Abs(s.Floating.X-s.Stack[n-1].X) <= a.Tolerance
	if !aligned && a.waited < a.Patience {
		return in
	}
	a.waited = 0

	if a.rng.Float64() < a.CutRatio && a.dragAcross(g, s, &in) {
		return in
	}
	in.Set(core.ActionDrop)
	return in
}

// dragAcross adds a horizontal drag that crosses the line halfway between its
// top and the pillow. It reports false when the line is too short to aim at.
func (a *Autoplayer) dragAcross(g *Game, s tower.Snapshot, in *core.InputFrame) bool {
	top := s.Line.Top
	bottom := s.Floating.Y - s.Floating.Height/2 - tower.TapPadding
	if s.Line.State != tower.LineShowing || bottom-top < g.scale.CellH*2 {
		return false
	}
	col, row := g.cellOf(s.Line.X, (top+bottom)/2)
	in.AddPointer(core.PointerDown, col-3, row)
	in.AddPointer(core.PointerMove, col+3, row)
	in.AddPointer(core.PointerUp, col+3, row)
	return true
}
