package tower

import "fmt"

// Cue names an audio notification. Playback is someone else's business.
type Cue string

const (
	CuePillowHit Cue = "pillowHit"
	CueSnip      Cue = "snip"
	CueSnip2     Cue = "snip2"
	CueImpact    Cue = "impact"
	CueImpact2   Cue = "impact2"
	CueFail      Cue = "fail"
)

// EventKind identifies an engine notification.
type EventKind int

const (
	EventLanded EventKind = iota
	EventMissed
	EventGameOver
	EventFeatherCollected
	EventLineCut
	EventDeflected
	EventSpawned
	EventCue
)

var eventNames = [...]string{
	EventLanded:           "landed",
	EventMissed:           "missed",
	EventGameOver:         "gameOver",
	EventFeatherCollected: "featherCollected",
	EventLineCut:          "lineCut",
	EventDeflected:        "deflected",
	EventSpawned:          "spawned",
	EventCue:              "cue",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a single notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	StackSize int     // Landed
	Lives     int     // Missed
	Feathers  int     // FeatherCollected
	Width     float64 // FeatherCollected
	Height    float64 // FeatherCollected
	Y         float64 // LineCut
	Spin      float64 // Deflected
	Cue       Cue     // Cue
}

func (e Event) String() string {
	switch e.Kind {
	case EventLanded:
		return fmt.Sprintf("landed(%d)", e.StackSize)
	case EventMissed:
		return fmt.Sprintf("missed(%d)", e.Lives)
	case EventFeatherCollected:
		return fmt.Sprintf("featherCollected(%d, %.1f, %.1f)", e.Feathers, e.Width, e.Height)
	case EventLineCut:
		return fmt.Sprintf("lineCut(%.1f)", e.Y)
	case EventDeflected:
		return fmt.Sprintf("deflected(%+.0f)", e.Spin)
	case EventCue:
		return "cue(" + string(e.Cue) + ")"
	default:
		return e.Kind.String() + "()"
	}
}

// Listener receives engine events synchronously. Implementations must not block
// and must not call mutating Engine methods.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

type nopListener struct{}

func (nopListener) OnEvent(Event) {}

// Recorder buffers events until drained.
type Recorder struct {
	events []Event
}

// OnEvent appends ev.
func (r *Recorder) OnEvent(ev Event) { r.events = append(r.events, ev) }

// Events returns the buffered events without clearing them.
func (r *Recorder) Events() []Event { return r.events }

// Count returns how many buffered events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
