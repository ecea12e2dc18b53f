package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TestDefaultBindings verifies the stock keys resolve to their intents
func TestDefaultBindings(t *testing.T) {
	m := NewMachine(nil)
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentSteerLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentSteerRight},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentSteerLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentSteerRight},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentSkip},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentSkip},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Process(tt.ev); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestSteerDirection verifies only steering intents carry a sign
func TestSteerDirection(t *testing.T) {
	if IntentSteerLeft.SteerDirection() != -1 || IntentSteerRight.SteerDirection() != 1 {
		t.Error("Steering intents have wrong direction")
	}
	if IntentPause.SteerDirection() != 0 {
		t.Error("Non-steering intent should have zero direction")
	}
}

// TestActionNamesRoundTrip verifies every registered action name resolves to an intent with that name
func TestActionNamesRoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		it, ok := ActionIntent(name)
		if !ok {
			t.Fatalf("Action %q not resolvable", name)
		}
		if it.String() != name {
			t.Errorf("Expected %q, got %q", name, it.String())
		}
	}
}

// TestLoadKeyConfig verifies overrides, unbinding and merging
func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
j = "steer_left"
k = "steer_right"
h = "none"
space = "pause"

[special_keys]
Up = "restart"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	checks := []struct {
		r    rune
		want IntentType
	}{
		{'j', IntentSteerLeft},
		{'k', IntentSteerRight},
		{'h', IntentNone},
		{' ', IntentPause},
		{'a', IntentSteerLeft},
	}
	for _, c := range checks {
		if got := kt.Runes[c.r]; got != c.want {
			t.Errorf("Rune %q: expected %s, got %s", c.r, c.want, got)
		}
	}
	if _, ok := kt.Runes['h']; ok {
		t.Error("Expected 'h' to be unbound")
	}
	if kt.SpecialKeys[tcell.KeyUp] != IntentRestart {
		t.Error("Expected Up bound to restart")
	}
	if kt.SpecialKeys[tcell.KeyLeft] != IntentSteerLeft {
		t.Error("Expected untouched special key to keep its default")
	}

	// Base is not mutated by the merge
	if DefaultKeyTable().Runes['h'] != IntentSteerLeft {
		t.Error("Default table changed")
	}
}

// TestLoadKeyConfigErrors verifies bad keymaps are rejected
func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "[keys]\nx = \"fly\"\n"},
		{"bad rune", "[keys]\nxy = \"quit\"\n"},
		{"bad special key", "[special_keys]\nF13 = \"quit\"\n"},
		{"unknown section", "[mouse]\nleft = \"quit\"\n"},
		{"syntax", "[keys\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

// TestSteeringHoldWindow verifies a press holds for the window then decays to zero
func TestSteeringHoldWindow(t *testing.T) {
	s := NewSteering(50 * time.Millisecond)
	if s.Advance(16*time.Millisecond) != 0 {
		t.Error("Expected idle steering to be zero")
	}

	s.Press(-3)
	frames := 0
	for s.Advance(16*time.Millisecond) == -1 {
		frames++
		if frames > 10 {
			t.Fatal("Steering never released")
		}
	}
	// 50ms at 16ms per frame covers four frames
	if frames != 4 {
		t.Errorf("Expected 4 held frames, got %d", frames)
	}

	// Repeat presses extend the hold and switch direction
	s.Press(1)
	s.Advance(40 * time.Millisecond)
	s.Press(1)
	if s.Advance(40*time.Millisecond) != 1 || s.Intent() != 1 {
		t.Error("Expected repeat press to keep steering right")
	}
	s.Release()
	if s.Intent() != 0 {
		t.Error("Expected release to clear direction")
	}
}
