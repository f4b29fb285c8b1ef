package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - walk up
	ActionDown            // S, Down arrow - walk down
	ActionLeft            // A, Left arrow - walk left
	ActionRight           // D, Right arrow - walk right
	ActionInteract        // F, E - pick up / place / serve
	ActionDrop            // G - put the held item on the floor
	ActionProcess         // Space - start chopping
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R - new shift after time is up
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionInteract:
		return "Interact"
	case ActionDrop:
		return "Drop"
	case ActionProcess:
		return "Process"
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

// IsMovement reports whether the action is one of the four walk directions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame holds the actions active during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction folds the movement actions into a unit step on each axis.
// Opposite directions held together cancel out.
func (f InputFrame) Direction() (dx, dy int) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
