package core

// Action is a semantic player intent, abstracted from physical key presses.
// The voice signal drives jumping; these cover everything else the host
// shell can request, plus ActionShout for the keyboard-input fallback.
type Action int

const (
	ActionNone        Action = iota
	ActionShout              // Space - keyboard stand-in for a loud noise
	ActionPause              // P - pause the run
	ActionResume             // R while paused - resume the run
	ActionLeaderboard        // L - show the top-3 leaderboard
	ActionBack               // B, Escape - leave the leaderboard view
	ActionRestart            // R after game over - start a fresh session
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShout:
		return "Shout"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
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

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
