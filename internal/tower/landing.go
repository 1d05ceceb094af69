package tower

// Outcome classifies one landing check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLand
	OutcomeDeflect
	OutcomeMiss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLand:
		return "land"
	case OutcomeDeflect:
		return "deflect"
	case OutcomeMiss:
		return "miss"
	default:
		return "none"
	}
}

// LandingInput is everything the resolver needs about one falling pillow.
type LandingInput struct {
	X, Y          float64
	Width, Height float64
	Uncontrolled  bool

	HasTop    bool
	TopX      float64
	TopY      float64
	TopHeight float64

	GroundLevel float64
	MissY       float64 // Scene y past which a pillow is lost

	MinWidth       float64
	EarlyDetection float64
}

// Resolution is the resolver's verdict plus the geometry it derived.
type Resolution struct {
	Outcome    Outcome
	LandingY   float64
	CollisionY float64
	TargetX    float64
	Spin       float64 // -1 or +1 on deflect
}

// Resolve classifies a falling pillow against the top of the stack, or the ground
// when the stack is empty. Uncontrolled pillows can only be missed.
func Resolve(in LandingInput) Resolution {
	var r Resolution
	halfH := in.Height / 2
	if in.HasTop {
		r.LandingY = in.TopY - in.TopHeight/2 - halfH
		r.TargetX = in.TopX
	} else {
		r.LandingY = in.GroundLevel - halfH
		r.TargetX = in.X
	}
	r.CollisionY = r.LandingY + halfH - LandingTolerance

	bottom := in.Y + halfH
	if !in.Uncontrolled && bottom >= r.CollisionY-in.EarlyDetection {
		left, right := in.X-in.Width/2, in.X+in.Width/2

		tightLeft := r.TargetX - in.MinWidth + CollisionMargin
		tightRight := r.TargetX + in.MinWidth - CollisionMargin
		if right >= tightLeft && left <= tightRight {
			r.Outcome = OutcomeLand
			return r
		}

		if in.HasTop && right >= r.TargetX-in.MinWidth && left <= r.TargetX+in.MinWidth {
			r.Outcome = OutcomeDeflect
			r.Spin = 1
			if right < tightLeft {
				r.Spin = -1
			}
			return r
		}
	}

	if in.Y > in.MissY {
		r.Outcome = OutcomeMiss
	}
	return r
}
