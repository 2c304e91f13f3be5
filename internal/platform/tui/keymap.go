package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tverd/dashrun/internal/core"
)

// KeyMapper translates raw key and mouse events to game intents.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an intent. Returns the intent
// (possibly IntentNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (intent core.Intent, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.IntentQuit, true
	case " ", "up", "w":
		return core.IntentJump, false
	case "enter":
		return core.IntentStart, false
	case "r":
		return core.IntentRestart, false
	}

	return core.IntentNone, false
}

// MapMouse translates a mouse message to an intent. Only presses count;
// a pointer press acts as the jump/start button, matching the keyboard.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Intent {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.IntentJump
	}
	return core.IntentNone
}
