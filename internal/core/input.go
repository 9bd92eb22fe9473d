package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - walk left
	ActionRight              // D, Right arrow - walk right
	ActionUp                 // W, Up arrow - climb up
	ActionDown               // S, Down arrow - climb down, crouch
	ActionJump               // Space, K - jump, leave ladder
	ActionAttack             // E, J - sword swing
	ActionMarkRespawn        // R - store current position as respawn point
	ActionConfirm            // Enter - start game, confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // N - restart level after winning
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionMarkRespawn:
		return "MarkRespawn"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick. Held holds actions
// whose key is currently down; Pressed holds actions whose key went down
// during this tick. A pressed action is always also held.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) this frame.
func (f *InputFrame) Set(a Action) {
	f.Hold(a)
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held without an edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Down returns true if the action is held.
func (f InputFrame) Down(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Axis returns -1, 0 or +1 from a pair of opposing held actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Down(neg) {
		v--
	}
	if f.Down(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
