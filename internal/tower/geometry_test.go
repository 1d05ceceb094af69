package tower_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/pillow-tower/internal/tower"
)

const eps = 1e-9

func TestCrossesLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		wantY          float64
		wantOK         bool
	}{
		{"diagonal inside extent", 50, 50, 150, 150, 100, true},
		{"reverse direction", 150, 150, 50, 50, 100, true},
		{"below the line bottom", 50, 250, 150, 250, 0, false},
		{"vertical drag", 50, 50, 50, 150, 0, false},
		{"does not reach the line", 10, 10, 90, 90, 0, false},
		{"ends on the line", 50, 100, 100, 100, 100, true},
		{"above the line top", 50, -20, 150, -10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, ok := tower.CrossesLine(tt.x1, tt.y1, tt.x2, tt.y2, 100, 0, 200)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (y=%v)", tt.wantOK, ok, y)
			}
			if ok && math.Abs(y-tt.wantY) > eps {
				t.Errorf("expected cut at y=%v, got %v", tt.wantY, y)
			}
		})
	}
}

func TestLineCutDetector(t *testing.T) {
	var d tower.LineCutDetector

	if _, ok := d.Move(150, 150, 100, 0, 200); ok {
		t.Error("move without a drag should not cut")
	}

	d.Begin(50, 50)
	if _, ok := d.Move(80, 80, 100, 0, 200); ok {
		t.Error("first sample should not reach the line")
	}
	y, ok := d.Move(120, 120, 100, 0, 200)
	if !ok || math.Abs(y-100) > eps {
		t.Errorf("expected cut at 100, got %v ok=%v", y, ok)
	}

	d.End()
	if d.Tracking() {
		t.Error("detector should stop tracking after End")
	}
}

func TestGrowthSize(t *testing.T) {
	p := tower.DefaultParams()

	prevW, prevH := 0.0, 0.0
	for f := 0; f <= tower.FeatherCap; f++ {
		w, h := tower.GrowthSize(f, p)
		if w < prevW || h < prevH {
			t.Fatalf("size shrank at %d feathers: %vx%v after %vx%v", f, w, h, prevW, prevH)
		}
		if w < p.MinWidth || w > p.MaxWidth || h < p.MinHeight || h > p.MaxHeight {
			t.Fatalf("size %vx%v out of bounds at %d feathers", w, h, f)
		}
		prevW, prevH = w, h
	}

	if w, h := tower.GrowthSize(tower.FeatherCap, p); w != p.MaxWidth || h != p.MaxHeight {
		t.Errorf("full pillow should be exactly %vx%v, got %vx%v", p.MaxWidth, p.MaxHeight, w, h)
	}
	if w, _ := tower.GrowthSize(500, p); w != p.MaxWidth {
		t.Errorf("overfull pillow should clamp to %v, got %v", p.MaxWidth, w)
	}
	if w, h := tower.GrowthSize(-3, p); w != p.MinWidth || h != p.MinHeight {
		t.Errorf("negative count should clamp to minimum, got %vx%v", w, h)
	}
	if w, _ := tower.GrowthSize(23, p); math.Abs(w-37.5) > eps {
		t.Errorf("half-full pillow should be 37.5 wide, got %v", w)
	}
}

func TestRotateReversible(t *testing.T) {
	const px, py = 200.0, 500.0
	points := [][2]float64{{200, 495}, {203, 485}, {190, 470}, {215, 300}}

	for ms := 0.0; ms < 10000; ms += 137 {
		angle := tower.SwayAngle(ms/1000, 1.5, 0.02)
		for _, pt := range points {
			x, y := tower.Rotate(pt[0], pt[1], px, py, angle)
			bx, by := tower.Rotate(x, y, px, py, -angle)
			if math.Abs(bx-pt[0]) > 1e-9 || math.Abs(by-pt[1]) > 1e-9 {
				t.Fatalf("t=%vms: %v rotated back to (%v, %v)", ms, pt, bx, by)
			}
		}
	}
}

func TestSwayAngleBounded(t *testing.T) {
	for ms := 0.0; ms < 20000; ms += 50 {
		if a := tower.SwayAngle(ms/1000, 1.5, 0.02); math.Abs(a) > 0.02+eps {
			t.Fatalf("angle %v exceeds amplitude at %vms", a, ms)
		}
	}
}

func TestResolve(t *testing.T) {
	base := tower.LandingInput{
		Width: 25, Height: 10,
		HasTop: true, TopX: 200, TopY: 495, TopHeight: 10,
		GroundLevel: 500,
		MissY:       650,
		MinWidth:    25,
	}

	tests := []struct {
		name      string
		x, y      float64
		uncontrol bool
		want      tower.Outcome
		spin      float64
	}{
		{"above trigger zone", 200, 400, false, tower.OutcomeNone, 0},
		{"centred in zone", 200, 480, false, tower.OutcomeLand, 0},
		{"edge of tight window", 217.5, 480, false, tower.OutcomeLand, 0},
		{"right of tight window", 225, 480, false, tower.OutcomeDeflect, 1},
		{"left of tight window", 170, 480, false, tower.OutcomeDeflect, -1},
		{"clear of both windows", 300, 480, false, tower.OutcomeNone, 0},
		{"clear and past the bottom", 300, 651, false, tower.OutcomeMiss, 0},
		{"uncontrolled over the tower", 200, 480, true, tower.OutcomeNone, 0},
		{"uncontrolled past the bottom", 200, 700, true, tower.OutcomeMiss, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.X, in.Y, in.Uncontrolled = tt.x, tt.y, tt.uncontrol
			r := tower.Resolve(in)
			if r.Outcome != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, r.Outcome)
			}
			if r.Spin != tt.spin {
				t.Errorf("expected spin %v, got %v", tt.spin, r.Spin)
			}
			if r.LandingY != 485 {
				t.Errorf("expected landing y 485, got %v", r.LandingY)
			}
			if r.TargetX != 200 {
				t.Errorf("expected target x 200, got %v", r.TargetX)
			}
		})
	}
}

func TestResolveEmptyStackLandsAnywhere(t *testing.T) {
	in := tower.LandingInput{
		X: 37, Y: 491, Width: 25, Height: 10,
		GroundLevel: 500, MissY: 650, MinWidth: 25,
	}
	r := tower.Resolve(in)
	if r.Outcome != tower.OutcomeLand {
		t.Fatalf("expected land on the ground, got %v", r.Outcome)
	}
	if r.LandingY != 495 {
		t.Errorf("expected landing y 495, got %v", r.LandingY)
	}
	if r.TargetX != 37 {
		t.Errorf("ground target should follow the pillow, got %v", r.TargetX)
	}
}

func TestResolveEarlyDetection(t *testing.T) {
	in := tower.LandingInput{
		X: 200, Y: 470, Width: 25, Height: 10,
		GroundLevel: 500, MissY: 650, MinWidth: 25,
	}
	if r := tower.Resolve(in); r.Outcome != tower.OutcomeNone {
		t.Fatalf("expected no outcome before the zone, got %v", r.Outcome)
	}
	in.EarlyDetection = 20
	if r := tower.Resolve(in); r.Outcome != tower.OutcomeLand {
		t.Fatalf("early detection should widen the zone, got %v", r.Outcome)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*tower.Params)
		valid  bool
	}{
		{"defaults", func(*tower.Params) {}, true},
		{"no sway", func(p *tower.Params) { p.SwayAngle = 0 }, true},
		{"zero width", func(p *tower.Params) { p.MinWidth = 0 }, false},
		{"inverted width", func(p *tower.Params) { p.MaxWidth = 10 }, false},
		{"inverted height", func(p *tower.Params) { p.MaxHeight = 5 }, false},
		{"negative ground", func(p *tower.Params) { p.GroundHeight = -1 }, false},
		{"negative early detection", func(p *tower.Params) { p.EarlyDetectionPixels = -2 }, false},
		{"no lives", func(p *tower.Params) { p.Lives = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tower.DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid params, got %v", err)
			}
			if !tt.valid && !errors.Is(err, tower.ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestWorldFrame(t *testing.T) {
	f := tower.NewWorldFrame(400, 600, 100)
	if f.GroundLevel() != 500 {
		t.Fatalf("expected ground 500, got %v", f.GroundLevel())
	}
	if y := f.ToScreenY(0); y != 500 {
		t.Errorf("ground should map to screen 500, got %v", y)
	}
	if y := f.ToScreenY(120); y != 380 {
		t.Errorf("120 above ground should map to 380, got %v", y)
	}

	f.SetScrollOffset(50)
	if y := f.ToScreenY(120); y != 430 {
		t.Errorf("scroll should push the scene down, got %v", y)
	}
	if f.VisibleTop() != -50 || f.VisibleBottom() != 550 {
		t.Errorf("unexpected visible range [%v, %v]", f.VisibleTop(), f.VisibleBottom())
	}

	f.Resize(800, 900)
	if f.GroundLevel() != 800 || f.CenterX() != 400 {
		t.Errorf("resize: ground %v centre %v", f.GroundLevel(), f.CenterX())
	}
}
