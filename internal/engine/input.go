package engine

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps terminal keys to actions; games never see raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // rotate (tetris), direction (snake)
	ActionDown          // soft drop, direction
	ActionLeft          // paddle/shooter/piece movement
	ActionRight         //
	ActionDrop          // Space: speed boost, ball launch, instant drop
	ActionSwap          // exchange the falling piece with the stored shape
	ActionPause         // toggle pause while running
	ActionRestart       // start a fresh session after an ended game
	ActionQuit          // leave the game
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
	case ActionDrop:
		return "Drop"
	case ActionSwap:
		return "Swap"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete input event. Pressed distinguishes key-down from
// key-up; games that track held keys (paddle movement, speed boost) consume
// both edges. Terminals deliver presses only, so the platform synthesizes
// releases from auto-repeat gaps.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// Press is shorthand for a key-down event.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: true}
}

// Release is shorthand for a key-up event.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: false}
}
