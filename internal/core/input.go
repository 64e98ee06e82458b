package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left, H - move pile cursor left
	ActionRight          // Right, L - move pile cursor right
	ActionUp             // Up, K - raise level
	ActionDown           // Down, J - lower level
	ActionConfirm        // Space, Enter - solve / play-pause / pick up / drop
	ActionPause          // P - toggle pause
	ActionRestart        // R - reset the puzzle at the current level
	ActionFaster         // +, = - increase animation speed
	ActionSlower         // - - decrease animation speed
	ActionStep           // N - apply a single move
	ActionPile1          // 1 - select first pile
	ActionPile2          // 2 - select second pile
	ActionPile3          // 3 - select third pile
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionConfirm: "Confirm",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionFaster:  "Faster",
	ActionSlower:  "Slower",
	ActionStep:    "Step",
	ActionPile1:   "Pile1",
	ActionPile2:   "Pile2",
	ActionPile3:   "Pile3",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// PileIndex returns the zero-based pile selected by a Pile action.
func (a Action) PileIndex() (int, bool) {
	switch a {
	case ActionPile1:
		return 0, true
	case ActionPile2:
		return 1, true
	case ActionPile3:
		return 2, true
	}
	return 0, false
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
