package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmoroz/brickgame/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action engine.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return engine.ActionQuit, true
	}

	// Game actions
	switch key {
	case "w", "up":
		return engine.ActionUp, false
	case "s", "down":
		return engine.ActionDown, false
	case "a", "left":
		return engine.ActionLeft, false
	case "d", "right":
		return engine.ActionRight, false
	case " ":
		return engine.ActionDrop, false
	case "c", "tab":
		return engine.ActionSwap, false
	case "p", "esc":
		return engine.ActionPause, false
	case "r":
		return engine.ActionRestart, false
	}

	return engine.ActionNone, false
}

// heldAction reports whether the action is one the games track across both
// key edges (movement and the speed boost). Tap actions like rotate and
// pause never enter the hold tracker, so quick repeated taps always land.
func heldAction(a engine.Action) bool {
	switch a {
	case engine.ActionDown, engine.ActionLeft, engine.ActionRight, engine.ActionDrop:
		return true
	}
	return false
}

// holdTracker synthesizes key releases. Terminals only deliver key presses;
// a held key shows up as the initial press followed by auto-repeat presses.
// The tracker treats a press of an already-held action as a repeat, and
// reports a release once no repeat has arrived for the window.
type holdTracker struct {
	window time.Duration
	held   map[engine.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		held:   make(map[engine.Action]time.Time),
	}
}

// Observe records a press at now and reports whether it is a fresh key-down
// rather than terminal auto-repeat. Non-held actions are always fresh.
func (h *holdTracker) Observe(a engine.Action, now time.Time) bool {
	if !heldAction(a) {
		return true
	}
	_, repeating := h.held[a]
	h.held[a] = now
	return !repeating
}

// Expired removes and returns the actions whose last press is older than
// the window. Each one is a synthesized key release. The order is fixed so
// a machine fed the same presses sees the same event stream.
func (h *holdTracker) Expired(now time.Time) []engine.Action {
	var released []engine.Action
	for a, last := range h.held {
		if now.Sub(last) >= h.window {
			delete(h.held, a)
			released = append(released, a)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Clear drops all held state, releasing nothing. Used when a session ends.
func (h *holdTracker) Clear() {
	h.held = make(map[engine.Action]time.Time)
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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
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
