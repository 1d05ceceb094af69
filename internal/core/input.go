package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionDrop            // Space: drop the floating pillow
	ActionFeathers        // F: release a feather burst
	ActionPause           // P, Escape
	ActionRestart         // R after game over
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDrop:
		return "Drop"
	case ActionFeathers:
		return "Feathers"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer sample.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one mouse sample in screen cells.
type PointerEvent struct {
	Kind PointerKind
	Col  int
	Row  int
}

// InputFrame collects everything the player did during one tick.
type InputFrame struct {
	Actions map[Action]bool
	// Pointer holds mouse samples in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddPointer appends a mouse sample.
func (f *InputFrame) AddPointer(kind PointerKind, col, row int) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, Col: col, Row: row})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
