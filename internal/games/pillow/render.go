package pillow

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/tower"
)

// Glyphs used by the renderer.
const (
	GroundTopChar  = '▀'
	GroundChar     = '█'
	PillowChar     = '▓'
	FloatingChar   = '▒'
	TumblingChar   = '░'
	LineChar       = '│'
	LifeChar       = '♥'
	LostLifeChar   = '♡'
	FeatherHUDChar = '✦'
)

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL",
			fmt.Sprintf("Need at least %dx%d", MinCols, MinRows))
		return
	}

	s := g.engine.Snapshot()
	frame := g.engine.Frame()

	g.drawGround(dst, s, frame)
	g.drawLine(dst, s, frame)
	for i, p := range s.Stack {
		c := core.ColorPillow
		if i%2 == 1 {
			c = core.ColorPillowShade
		}
		g.drawBox(dst, frame, p.X, p.Y, p.Width, p.Height, PillowChar, c)
	}
	if s.HasFloating {
		g.drawFloating(dst, s, frame)
	}

	g.drawHUD(dst, s)

	switch {
	case s.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Tower: %d  |  Press R to restart", len(s.Stack)))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawGround(dst *core.Screen, s tower.Snapshot, frame tower.WorldFrame) {
	_, row := g.scale.ToCell(0, frame.SceneToScreenY(s.GroundLevel))
	if row >= dst.Height() {
		return
	}
	dst.DrawHLine(0, row, dst.Width(), GroundTopChar, core.ColorGround)
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

// drawVertical draws the line between two scene y values at scene x.
func (g *Game) drawVertical(dst *core.Screen, frame tower.WorldFrame, x, from, to float64) {
	if to < from {
		from, to = to, from
	}
	col, top := g.scale.ToCell(x, frame.SceneToScreenY(from))
	_, bottom := g.scale.ToCell(x, frame.SceneToScreenY(to))
	if bottom >= top {
		dst.DrawVLine(col, top, bottom-top+1, LineChar, core.ColorLine)
	}
}

func (g *Game) drawLine(dst *core.Screen, s tower.Snapshot, frame tower.WorldFrame) {
	l := s.Line
	switch l.State {
	case tower.LineShowing, tower.LineRetracting:
		g.drawVertical(dst, frame, l.X, l.Top, l.Bottom)
	case tower.LineCut:
		if !l.Severed {
			return
		}
		g.drawVertical(dst, frame, l.X, l.Top, l.UpperEnd)
		if s.HasFloating {
			g.drawVertical(dst, frame, l.X, l.LowerStart, s.Floating.Y-s.Floating.Height/2)
		}
	}
}

func (g *Game) drawFloating(dst *core.Screen, s tower.Snapshot, frame tower.WorldFrame) {
	f := s.Floating
	glyph, c := FloatingChar, core.ColorFloating
	if f.Feathers > 0 {
		c = core.ColorGrown
	}
	if f.Uncontrolled {
		glyph, c = TumblingChar, core.ColorAlert
	}
	g.drawBox(dst, frame, f.X, f.Y, f.Width, f.Height, glyph, c)
}

func (g *Game) drawBox(dst *core.Screen, frame tower.WorldFrame, x, y, w, h float64, glyph rune, c core.Color) {
	sy := frame.SceneToScreenY(y)
	r := g.scale.SpanRect(x-w/2, sy-h/2, x+w/2, sy+h/2)
	if !r.Intersects(dst.Bounds()) {
		return
	}
	dst.DrawRect(r, glyph, c)
}

func (g *Game) drawHUD(dst *core.Screen, s tower.Snapshot) {
	lives := strings.Repeat(string(LifeChar), s.Lives)
	if lost := g.cfg.Gameplay.Lives - s.Lives; lost > 0 {
		lives += strings.Repeat(string(LostLifeChar), lost)
	}

	x := 1
	label := fmt.Sprintf(" Tower: %d ", len(s.Stack))
	dst.DrawTextColored(x, 0, label, core.ColorHUD)
	x += len(label) + 1
	dst.DrawTextColored(x, 0, lives, core.ColorLife)
	x += len([]rune(lives)) + 2

	if s.HasFloating && s.Floating.Feathers > 0 {
		dst.DrawTextColored(x, 0, fmt.Sprintf("%c %d/%d", FeatherHUDChar, s.Floating.Feathers, tower.FeatherCap), core.ColorFeather)
	}
	if s.PendingFeathers > 0 {
		dst.DrawTextColored(1, 1, fmt.Sprintf(" %d feathers incoming ", s.PendingFeathers), core.ColorFeather)
	}

	dst.DrawTextCentered(dst.Height()-1, "SPACE drop  drag across the line to cut  F feathers  P pause", core.ColorDim)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorAlert)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorHUD)
}

// cellOf returns the cell holding a scene point; used by autoplay and tests.
func (g *Game) cellOf(x, sceneY float64) (col, row int) {
	return g.scale.ToCell(x, g.engine.Frame().SceneToScreenY(sceneY))
}
