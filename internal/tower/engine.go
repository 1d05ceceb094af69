package tower

import (
	"math"
	"math/rand"
	"slices"
	"sort"
)

// Phase is the floating pillow's round state.
type Phase int

const (
	PhaseLowering Phase = iota
	PhaseClickable
	PhaseFalling
	PhaseDeflected
	PhaseRespawning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLowering:
		return "lowering"
	case PhaseClickable:
		return "clickable"
	case PhaseFalling:
		return "falling"
	case PhaseDeflected:
		return "deflected"
	case PhaseRespawning:
		return "respawning"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Feather burst timing, in milliseconds.
const (
	DefaultFeatherBurst = 23
	FeatherDelay        = 3000.0
	FeatherStagger      = 150.0
	FeatherFlight       = 500.0
	featherGroupShare   = 0.1
)

// FloatingPillow is the single pillow under player control.
type FloatingPillow struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Feathers      int

	VelocityY          float64
	AngularVelocity    float64
	HorizontalVelocity float64
	Uncontrolled       bool
}

type lowering struct {
	active  bool
	start   float64
	target  float64
	elapsed float64
}

type featherArrival struct {
	at    float64
	count int
}

// Engine runs the stacking simulation. It is single-threaded: every method must
// be called from the goroutine that owns it.
type Engine struct {
	params   Params
	frame    WorldFrame
	stack    *Stack
	pivotX   float64
	listener Listener
	seed     int64
	rng      *rand.Rand

	floating  *FloatingPillow
	idleBaseX float64
	lower     lowering
	clickable bool
	phase     Phase

	line         Line
	lineTrack    *track
	upperTrack   *track
	detector     LineCutDetector
	swayAngle    float64
	lives        int
	dropCount    int
	gameOver     bool
	featherQueue []featherArrival
}

// NewEngine builds an engine for a viewport of width×height pixels and spawns
// the first pillow. The seed drives cue variant selection.
func NewEngine(p Params, width, height float64, seed int64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params:   p,
		frame:    NewWorldFrame(width, height, p.GroundHeight),
		listener: nopListener{},
		seed:     seed,
	}
	e.Reset()
	return e, nil
}

// SetListener replaces the event listener. A nil listener discards events.
func (e *Engine) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	e.listener = l
}

// Reset discards the tower and starts a fresh game with full lives.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.seed))
	e.stack = NewStack()
	e.pivotX = e.frame.CenterX()
	e.floating = nil
	e.line = Line{}
	e.lineTrack = nil
	e.upperTrack = nil
	e.detector.End()
	e.swayAngle = 0
	e.lives = e.params.Lives
	e.dropCount = 0
	e.gameOver = false
	e.featherQueue = nil
	e.spawn()
}

// Params returns the active parameters.
func (e *Engine) Params() Params { return e.params }

// SetParams swaps parameters between ticks. Invalid parameters are rejected and
// the previous ones stay active. Lives apply from the next Reset.
func (e *Engine) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	oldCenter, oldGround := e.frame.CenterX(), e.frame.GroundLevel()
	e.params = p
	e.frame.SetGroundHeight(p.GroundHeight)
	if e.floating != nil {
		e.floating.Width, e.floating.Height = GrowthSize(e.floating.Feathers, p)
	}
	e.reframe(oldCenter, oldGround)
	return nil
}

// Resize changes the viewport. A falling pillow keeps its position; the idle
// pillow keeps its offset from the centre, and the pivot and the stack follow
// the centre so the tower stays under the swing.
func (e *Engine) Resize(width, height float64) {
	oldCenter, oldGround := e.frame.CenterX(), e.frame.GroundLevel()
	e.frame.Resize(width, height)
	e.reframe(oldCenter, oldGround)
}

// SetScrollOffset moves the camera. Scroll only changes which part of the scene
// is visible and where new pillows and the line start.
func (e *Engine) SetScrollOffset(offset float64) {
	e.frame.SetScrollOffset(offset)
}

// Frame returns the current world frame.
func (e *Engine) Frame() WorldFrame { return e.frame }

func (e *Engine) reframe(oldCenter, oldGround float64) {
	dc := e.frame.CenterX() - oldCenter
	dg := e.frame.GroundLevel() - oldGround

	e.pivotX += dc
	if !e.stack.Empty() {
		e.stack.offsets[0] += dc
		e.layout(e.swayAngle)
	}

	if e.floating != nil && e.idle() {
		e.idleBaseX += dc
		e.floating.X += dc
		e.floating.Y += dg
		e.lower.start += dg
		e.lower.target += dg
		e.line.X = e.floating.X
		e.line.Bottom += dg
		if e.lineTrack != nil {
			e.lineTrack.shift(dg)
		}
	}
}

func (e *Engine) idle() bool {
	return e.phase == PhaseLowering || e.phase == PhaseClickable
}

func (e *Engine) falling() bool {
	return e.phase == PhaseFalling || e.phase == PhaseDeflected
}

func (e *Engine) emit(ev Event) { e.listener.OnEvent(ev) }

func (e *Engine) cue(c Cue) { e.emit(Event{Kind: EventCue, Cue: c}) }

// pick returns a or b with equal probability.
func (e *Engine) pick(a, b Cue) Cue {
	if e.rng.Intn(2) == 0 {
		return a
	}
	return b
}

// spawn starts a new round: a minimum-size pillow lowers from the top of the
// view on a fresh line. Any eases of the previous round are dropped.
func (e *Engine) spawn() {
	if e.gameOver {
		return
	}
	top := e.frame.VisibleTop()
	target := e.frame.GroundLevel() - FirstDropDepth
	if t, ok := e.stack.Top(); ok {
		hover := math.Min(HoverBase+float64(e.dropCount)*HoverPerDrop, HoverMax)
		target = t.Y - t.Height/2 - e.params.MinHeight/2 - hover
	}

	e.idleBaseX = e.frame.CenterX()
	e.floating = &FloatingPillow{
		X:      e.idleBaseX,
		Y:      top,
		Width:  e.params.MinWidth,
		Height: e.params.MinHeight,
	}
	e.lower = lowering{active: true, start: top, target: target}
	e.clickable = false
	e.phase = PhaseLowering

	e.line = Line{State: LineShowing, X: e.floating.X, Top: top, Bottom: top}
	e.lineTrack = newTrack(top, target, LowerDuration, easeLower)
	e.upperTrack = nil

	e.emit(Event{Kind: EventSpawned})
}

// Tick advances the simulation by dt milliseconds; now is the host clock in
// milliseconds and drives the sway and idle wobble.
func (e *Engine) Tick(dt, now float64) {
	e.deliverFeathers(now)
	e.checkLanding()
	e.integrate(dt)
	e.sway(now)
	e.updateLowering(dt, now)
	e.updateLine(dt)
}

func (e *Engine) checkLanding() {
	if e.floating == nil || !e.falling() {
		return
	}
	fp := e.floating
	in := LandingInput{
		X:              fp.X,
		Y:              fp.Y,
		Width:          fp.Width,
		Height:         fp.Height,
		Uncontrolled:   fp.Uncontrolled,
		GroundLevel:    e.frame.GroundLevel(),
		MissY:          e.frame.VisibleBottom() + MissOverrun,
		MinWidth:       e.params.MinWidth,
		EarlyDetection: e.params.EarlyDetectionPixels,
	}
	if t, ok := e.stack.Top(); ok {
		in.HasTop = true
		in.TopX, in.TopY, in.TopHeight = t.X, t.Y, t.Height
	}

	r := Resolve(in)
	switch r.Outcome {
	case OutcomeLand:
		e.land(r)
	case OutcomeDeflect:
		fp.Uncontrolled = true
		fp.AngularVelocity = r.Spin * DeflectSpin
		fp.HorizontalVelocity = r.Spin * DeflectDrift
		e.phase = PhaseDeflected
		e.emit(Event{Kind: EventDeflected, Spin: r.Spin})
	case OutcomeMiss:
		e.miss()
	}
}

func (e *Engine) land(r Resolution) {
	fp := e.floating
	p := Pillow{Width: fp.Width, Height: fp.Height, X: fp.X, Y: r.LandingY}
	first := e.stack.Empty()
	e.stack.push(p, r.TargetX)
	if first {
		e.pivotX = p.X
	}
	e.dropCount++
	e.floating = nil

	e.cue(e.pick(CueImpact, CueImpact2))
	e.emit(Event{Kind: EventLanded, StackSize: e.stack.Len()})
	e.spawn()
}

// miss loses the floating pillow and a life. The last life ends the game.
func (e *Engine) miss() {
	if e.gameOver {
		return
	}
	from := e.line.Bottom
	if e.line.State == LineCut && e.line.Severed {
		from = e.line.UpperEnd
	}
	e.floating = nil
	e.lives--
	e.cue(CueFail)
	e.emit(Event{Kind: EventMissed, Lives: e.lives})

	if e.lives <= 0 {
		e.lives = 0
		e.gameOver = true
		e.phase = PhaseGameOver
		e.line = Line{}
		e.lineTrack = nil
		e.upperTrack = nil
		e.emit(Event{Kind: EventGameOver})
		return
	}

	e.phase = PhaseRespawning
	e.line = Line{State: LineRetracting, X: e.line.X, Top: e.line.Top, Bottom: from}
	e.lineTrack = newTrack(from, e.line.Top, MissRetractDuration, easeMissRetract)
	e.upperTrack = nil
}

func (e *Engine) integrate(dt float64) {
	if e.floating == nil || !e.falling() {
		return
	}
	s := dt / 1000
	fp := e.floating
	fp.VelocityY += Gravity * s
	fp.Y += fp.VelocityY * s
	if fp.Uncontrolled {
		fp.Rotation += fp.AngularVelocity * s
		fp.X += fp.HorizontalVelocity * s
	}
}

func (e *Engine) sway(now float64) {
	if e.stack.Len() <= 1 {
		return
	}
	e.swayAngle = SwayAngle(now/1000, e.params.SwaySpeed, e.params.SwayAngle)
	e.layout(e.swayAngle)
}

// layout places every settled pillow from the frozen offsets and heights, rotated
// rigidly about the ground pivot.
func (e *Engine) layout(angle float64) {
	ground := e.frame.GroundLevel()
	for i := 0; i < e.stack.Len(); i++ {
		x, y := e.stack.RestPosition(i, ground)
		rx, ry := Rotate(x, y, e.pivotX, ground, angle)
		e.stack.setPose(i, rx, ry, angle)
	}
}

func (e *Engine) updateLowering(dt, now float64) {
	if e.floating == nil || !e.idle() {
		return
	}
	fp := e.floating
	fp.X = e.idleBaseX + math.Sin(now/1000*sideSwayFreq)*(sideSwayBaseAmpl+float64(e.dropCount))

	if !e.lower.active {
		return
	}
	e.lower.elapsed += dt
	fp.Y = lowerY(e.lower.start, e.lower.target, e.lower.elapsed)
	if !e.clickable && lowerProgress(e.lower.elapsed) >= 0.5 {
		e.clickable = true
		e.phase = PhaseClickable
	}
	if e.lower.elapsed >= LowerDuration {
		fp.Y = e.lower.target
		e.lower.active = false
		e.clickable = true
		e.phase = PhaseClickable
	}
}

func (e *Engine) updateLine(dt float64) {
	switch e.line.State {
	case LineShowing:
		if e.floating != nil {
			e.line.X = e.floating.X
		}
		if e.lineTrack != nil {
			e.line.Bottom = e.lineTrack.advance(dt)
		}
	case LineCut:
		if e.floating == nil || !e.line.Severed {
			return
		}
		e.line.X = e.floating.X
		if e.upperTrack != nil {
			e.line.UpperEnd = e.upperTrack.advance(dt)
		}
		target := math.Max(e.line.CutY, e.floating.Y-LineTrailGap)
		e.line.LowerStart += (target - e.line.LowerStart) * LineTrailSmoothing
	case LineRetracting:
		e.line.Bottom = e.lineTrack.advance(dt)
		if e.lineTrack.done {
			e.line = Line{}
			e.lineTrack = nil
			e.spawn()
		}
	}
}

// drop releases the floating pillow into free fall and cancels its eases.
func (e *Engine) drop() {
	fp := e.floating
	fp.VelocityY = 0
	e.lower.active = false
	e.clickable = false
	e.phase = PhaseFalling
	e.lineTrack = nil
	e.line.State = LineCut
}

func (e *Engine) canDrop() bool {
	return !e.gameOver && e.floating != nil && e.idle() && e.clickable
}

// PointerDown handles a press at screen coordinates. A press on the clickable
// pillow, padded by TapPadding, drops it; any press starts a cut gesture.
func (e *Engine) PointerDown(x, y float64) {
	sy := y - e.frame.ScrollOffset()
	e.detector.Begin(x, sy)
	if !e.canDrop() {
		return
	}
	fp := e.floating
	if math.Abs(x-fp.X) <= fp.Width/2+TapPadding && math.Abs(sy-fp.Y) <= fp.Height/2+TapPadding {
		e.detector.End()
		e.drop()
	}
}

// PointerMove feeds a drag sample at screen coordinates. Crossing the showing
// line cuts it and drops the pillow.
func (e *Engine) PointerMove(x, y float64) {
	sy := y - e.frame.ScrollOffset()
	if !e.canDrop() || e.line.State != LineShowing {
		if e.detector.Tracking() {
			e.detector.Begin(x, sy)
		}
		return
	}
	cutY, ok := e.detector.Move(x, sy, e.line.X, e.line.Top, e.line.Bottom)
	if !ok {
		return
	}
	e.detector.End()
	e.drop()
	e.line.Severed = true
	e.line.CutY = cutY
	e.line.UpperEnd = cutY
	e.line.LowerStart = cutY
	e.upperTrack = newTrack(cutY, e.line.Top, CutRetractDuration, easeCutRetract)

	e.emit(Event{Kind: EventLineCut, Y: cutY})
	e.cue(e.pick(CueSnip, CueSnip2))
}

// PointerUp ends the current gesture.
func (e *Engine) PointerUp() { e.detector.End() }

// CollectFeather grows the floating pillow by one feather. It reports false when
// there is no pillow to grow, the game is over or the pillow is full.
func (e *Engine) CollectFeather() bool {
	if e.gameOver || e.floating == nil {
		return false
	}
	fp := e.floating
	if fp.Feathers >= FeatherCap {
		return false
	}
	fp.Feathers++
	fp.Width, fp.Height = GrowthSize(fp.Feathers, e.params)
	e.emit(Event{Kind: EventFeatherCollected, Feathers: fp.Feathers, Width: fp.Width, Height: fp.Height})
	return true
}

// QueueFeatherBurst schedules n feathers released at now. They arrive after
// FeatherDelay in groups of a tenth of the burst, each group FeatherStagger
// after the previous one, and fly FeatherFlight before they are collected.
func (e *Engine) QueueFeatherBurst(n int, now float64) {
	if n <= 0 || e.gameOver {
		return
	}
	group := int(math.Ceil(float64(n) * featherGroupShare))
	for k, left := 0, n; left > 0; k++ {
		c := min(group, left)
		at := now + FeatherDelay + float64(k)*FeatherStagger + FeatherFlight
		i := sort.Search(len(e.featherQueue), func(j int) bool { return e.featherQueue[j].at > at })
		e.featherQueue = slices.Insert(e.featherQueue, i, featherArrival{at: at, count: c})
		left -= c
	}
	e.cue(CuePillowHit)
}

// deliverFeathers collects every group due by now. The queue is kept sorted
// by arrival, so overlapping bursts interleave.
func (e *Engine) deliverFeathers(now float64) {
	n := 0
	for _, f := range e.featherQueue {
		if f.at > now {
			break
		}
		for i := 0; i < f.count; i++ {
			e.CollectFeather()
		}
		n++
	}
	e.featherQueue = e.featherQueue[n:]
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// GameOver reports whether the last life is gone.
func (e *Engine) GameOver() bool { return e.gameOver }

// StackSize returns the number of settled pillows.
func (e *Engine) StackSize() int { return e.stack.Len() }

// Phase returns the current round phase.
func (e *Engine) Phase() Phase { return e.phase }

// Snapshot is a read-only copy of the engine for renderers.
type Snapshot struct {
	Phase       Phase
	Stack       []Pillow
	Offsets     []float64
	Heights     []float64
	Floating    FloatingPillow
	HasFloating bool
	Clickable   bool
	Line        Line

	Lives           int
	DropCount       int
	GameOver        bool
	SwayAngle       float64
	PivotX          float64
	GroundLevel     float64
	ScrollOffset    float64
	Width           float64
	Height          float64
	PendingFeathers int
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        e.phase,
		Stack:        e.stack.Pillows(),
		Offsets:      e.stack.Offsets(),
		Heights:      e.stack.Heights(),
		Clickable:    e.clickable,
		Line:         e.line,
		Lives:        e.lives,
		DropCount:    e.dropCount,
		GameOver:     e.gameOver,
		SwayAngle:    e.swayAngle,
		PivotX:       e.pivotX,
		GroundLevel:  e.frame.GroundLevel(),
		ScrollOffset: e.frame.ScrollOffset(),
		Width:        e.frame.Width(),
		Height:       e.frame.Height(),
	}
	if e.floating != nil {
		s.Floating = *e.floating
		s.HasFloating = true
	}
	for _, f := range e.featherQueue {
		s.PendingFeathers += f.count
	}
	return s
}

// TowerTop returns the scene y of the tower's upper edge.
func (e *Engine) TowerTop() float64 {
	return e.stack.TopY(e.frame.GroundLevel())
}
