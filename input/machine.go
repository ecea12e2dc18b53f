package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine converts terminal events into intents
type Machine struct {
	keys *KeyTable
}

// NewMachine creates a machine over a key table; nil uses the defaults
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys}
}

// Process maps one event to an intent
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Ctrl+C always quits regardless of keymap
		if ev.Key() == tcell.KeyCtrlC {
			return IntentQuit
		}
		return m.keys.Lookup(ev)
	case *tcell.EventResize:
		return IntentResize
	default:
		return IntentNone
	}
}
