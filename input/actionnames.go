package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
	"pause":       IntentPause,
	"restart":     IntentRestart,
	"skip":        IntentSkip,
	"steer_left":  IntentSteerLeft,
	"steer_right": IntentSteerRight,
}

// ActionIntent returns the intent for an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all registered action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
