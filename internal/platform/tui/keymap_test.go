package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmoroz/brickgame/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action engine.Action
		quit   bool
	}{
		{"up", engine.ActionUp, false},
		{"w", engine.ActionUp, false},
		{"down", engine.ActionDown, false},
		{"s", engine.ActionDown, false},
		{"left", engine.ActionLeft, false},
		{"a", engine.ActionLeft, false},
		{"right", engine.ActionRight, false},
		{"d", engine.ActionRight, false},
		{"space", engine.ActionDrop, false},
		{"c", engine.ActionSwap, false},
		{"p", engine.ActionPause, false},
		{"esc", engine.ActionPause, false},
		{"r", engine.ActionRestart, false},
		{"q", engine.ActionQuit, true},
		{"ctrl+c", engine.ActionQuit, true},
		{"x", engine.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestHoldTrackerFreshVsRepeat(t *testing.T) {
	h := newHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	if !h.Observe(engine.ActionLeft, t0) {
		t.Error("first press should be fresh")
	}
	if h.Observe(engine.ActionLeft, t0.Add(30*time.Millisecond)) {
		t.Error("a press while held is terminal auto-repeat")
	}

	// A different action is independent
	if !h.Observe(engine.ActionDrop, t0) {
		t.Error("a different action should be fresh")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := newHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	h.Observe(engine.ActionLeft, t0)

	if got := h.Expired(t0.Add(100 * time.Millisecond)); len(got) != 0 {
		t.Errorf("no release inside the window, got %v", got)
	}

	got := h.Expired(t0.Add(200 * time.Millisecond))
	if len(got) != 1 || got[0] != engine.ActionLeft {
		t.Fatalf("expected a left release, got %v", got)
	}

	// Released once only
	if got := h.Expired(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Errorf("a released action must not release again, got %v", got)
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := newHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	h.Observe(engine.ActionDown, t0)
	h.Observe(engine.ActionDown, t0.Add(100*time.Millisecond))

	// The window restarts at the repeat
	if got := h.Expired(t0.Add(200 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat should extend the hold, got release %v", got)
	}
	if got := h.Expired(t0.Add(300 * time.Millisecond)); len(got) != 1 {
		t.Errorf("expected the release after the extended window, got %v", got)
	}
}

func TestHoldTrackerTapActionsNotTracked(t *testing.T) {
	h := newHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	// Rotate is a tap: quick repeated presses all count.
	if !h.Observe(engine.ActionUp, t0) {
		t.Error("tap press should be fresh")
	}
	if !h.Observe(engine.ActionUp, t0.Add(20*time.Millisecond)) {
		t.Error("a second tap should also be fresh")
	}
	if got := h.Expired(t0.Add(time.Second)); len(got) != 0 {
		t.Errorf("taps never synthesize releases, got %v", got)
	}
}

func TestHoldTrackerDeterministicOrder(t *testing.T) {
	h := newHoldTracker(150 * time.Millisecond)
	t0 := time.Now()

	h.Observe(engine.ActionDrop, t0)
	h.Observe(engine.ActionLeft, t0)
	h.Observe(engine.ActionRight, t0)

	got := h.Expired(t0.Add(200 * time.Millisecond))
	want := []engine.Action{engine.ActionLeft, engine.ActionRight, engine.ActionDrop}
	if len(got) != len(want) {
		t.Fatalf("expected %d releases, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("release %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		var msg tea.KeyMsg
		if tc.key == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		} else {
			msg = keyMsg(tc.key)
		}
		if got := km.MapKeyToMenuAction(msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
