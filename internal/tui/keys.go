package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionFocusSearch
	ActionBlurSearch
	ActionSubmitSearch
	ActionHistoryOlder
	ActionHistoryNewer
	ActionRetry
	ActionActivate
	ActionCloseBanner
	ActionToggleTheme
	ActionMoveUp
	ActionMoveDown
	ActionGoToTop
	ActionGoToBottom
	ActionPageUp
	ActionPageDown
)

// KeyHandler maps key presses to actions depending on focus.
type KeyHandler struct{}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle returns the action for msg. searchFocused selects the search box
// key map; keys it returns ActionNone for are typed into the box.
func (k *KeyHandler) Handle(msg tea.KeyMsg, searchFocused bool) KeyAction {
	key := msg.String()
	if key == "ctrl+c" {
		return ActionQuit
	}
	if searchFocused {
		return searchKeyToAction(key)
	}
	return listKeyToAction(key)
}

func searchKeyToAction(key string) KeyAction {
	switch key {
	case "enter":
		return ActionSubmitSearch
	case "esc", "tab":
		return ActionBlurSearch
	case "up", "ctrl+p":
		return ActionHistoryOlder
	case "down", "ctrl+n":
		return ActionHistoryNewer
	default:
		return ActionNone
	}
}

func listKeyToAction(key string) KeyAction {
	switch key {
	case "q":
		return ActionQuit
	case "/", "i", "tab":
		return ActionFocusSearch
	case "r":
		return ActionRetry
	case "enter":
		return ActionActivate
	case "x":
		return ActionCloseBanner
	case "t":
		return ActionToggleTheme
	case "j", "down":
		return ActionMoveDown
	case "k", "up":
		return ActionMoveUp
	case "g", "home":
		return ActionGoToTop
	case "G", "end":
		return ActionGoToBottom
	case "pgup", "ctrl+u":
		return ActionPageUp
	case "pgdown", "ctrl+d":
		return ActionPageDown
	default:
		return ActionNone
	}
}
