package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/core"
)

// HoldWindow is how long a terminal key press keeps its action held.
// Terminals only report presses, so auto-repeat refreshes the window and a
// released key lets it lapse.
const HoldWindow = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// holdable reports whether an action is level-triggered in the game.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionUp
}

// holdTracker emulates key-held state from press events.
type holdTracker struct {
	window   time.Duration
	deadline map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, deadline: make(map[core.Action]time.Time)}
}

// Press starts or extends the hold window for a. Pressing one direction
// releases the opposite one.
func (h *holdTracker) Press(a core.Action, now time.Time) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.deadline, core.ActionRight)
	case core.ActionRight:
		delete(h.deadline, core.ActionLeft)
	}
	h.deadline[a] = now.Add(h.window)
}

// Apply marks every action still inside its window as held on frame and
// forgets the expired ones.
func (h *holdTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.deadline {
		if now.After(until) {
			delete(h.deadline, a)
			continue
		}
		frame.SetHeld(a)
	}
}

// Reset releases everything.
func (h *holdTracker) Reset() {
	clear(h.deadline)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
