package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse buttons. Games react to intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space, Up, W, left click - flap / start / press buttons
	ActionCycleColor         // C, right click - next bird color
	ActionCycleScene         // N, middle click - toggle day/night
	ActionRestart            // R, Enter - restart after game over
	ActionLeaderboard        // L - open the leaderboard after game over
	ActionPause              // P - pause/unpause during play
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionCycleColor:
		return "CycleColor"
	case ActionCycleScene:
		return "CycleScene"
	case ActionRestart:
		return "Restart"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a click position in world coordinates.
type Pointer struct {
	X, Y float64
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Click is set when the primary action came from a mouse press.
	Click *Pointer
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

// SetClick marks the primary action as a click at the given world position.
func (f *InputFrame) SetClick(x, y float64) {
	f.Set(ActionFlap)
	f.Click = &Pointer{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ClickedIn reports whether this frame carries a click inside r.
func (f InputFrame) ClickedIn(r RectF) bool {
	return f.Click != nil && r.Contains(f.Click.X, f.Click.Y)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}
