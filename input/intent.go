package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Run control
	IntentPause   // p
	IntentRestart // r
	IntentSkip    // Space, Enter (skips the wipeout transition)

	// Steering
	IntentSteerLeft  // h, a, Left arrow
	IntentSteerRight // l, d, Right arrow
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentPause:      "pause",
	IntentRestart:    "restart",
	IntentSkip:       "skip",
	IntentSteerLeft:  "steer_left",
	IntentSteerRight: "steer_right",
}

// String returns the canonical action name
func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// SteerDirection returns the lateral sign of a steering intent, zero otherwise
func (t IntentType) SteerDirection() int {
	switch t {
	case IntentSteerLeft:
		return -1
	case IntentSteerRight:
		return 1
	default:
		return 0
	}
}
