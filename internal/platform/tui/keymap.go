package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roar-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions. Returns the actions triggered
// by the key (R carries both resume and restart; the game keeps whichever is
// valid in its current phase) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case " ", "up", "w": // Keyboard stand-in for a loud noise
		return []core.Action{core.ActionShout}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionResume, core.ActionRestart}, false
	case "l":
		return []core.Action{core.ActionLeaderboard}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}
