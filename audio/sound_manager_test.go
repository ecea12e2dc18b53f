package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/engine"
)

func silentConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: false, Volume: 0.5}
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for _, c := range []Cue{CueNone, CueCoin, CueBounce, CueCrash, CueWindStart, CueWindStop} {
		sm.Play(c)
	}
	sm.StartWind()
	sm.StopWind()
	sm.SetVolume(0.2)
	sm.HandleEvents([]engine.Event{{Type: engine.EventPickup}, {Type: engine.EventDeath}})
	sm.Cleanup()

	if sm.Active() {
		t.Error("Expected inactive manager without initialization")
	}
}

// TestSoundManagerDisabled verifies a disabled manager never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(silentConfig())
	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled initialization to be a no-op, got %v", err)
	}
	if sm.Active() {
		t.Error("Expected disabled manager to stay inactive")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)

	// Speaker initialization may fail in environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.StartWind()
	sm.Play(CueCoin)
	sm.Cleanup()
	if sm.Active() {
		t.Error("Expected inactive manager after cleanup")
	}
}

// TestCueMapping verifies each event type maps to its cue
func TestCueMapping(t *testing.T) {
	sm := NewSoundManager(silentConfig())
	tests := []struct {
		event engine.EventType
		want  Cue
	}{
		{engine.EventPickup, CueCoin},
		{engine.EventDeath, CueCrash},
		{engine.EventGameOver, CueWindStop},
		{engine.EventReset, CueWindStart},
		{engine.EventLethal, CueNone},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			if got := sm.cueFor(engine.Event{Type: tt.event, Tick: 10}); got != tt.want {
				t.Errorf("Expected cue %d, got %d", tt.want, got)
			}
		})
	}
}

// TestBounceCueDebounced verifies a held ramp contact sounds once
func TestBounceCueDebounced(t *testing.T) {
	sm := NewSoundManager(silentConfig())
	bounce := func(tick uint64) Cue {
		return sm.cueFor(engine.Event{Type: engine.EventBounce, Tick: tick})
	}

	if bounce(5) != CueBounce {
		t.Error("Expected first contact to sound")
	}
	if bounce(6) != CueNone || bounce(7) != CueNone {
		t.Error("Expected consecutive contact ticks to be silent")
	}
	if bounce(20) != CueBounce {
		t.Error("Expected a new contact after a gap to sound")
	}

	// Reset clears the debounce
	sm.cueFor(engine.Event{Type: engine.EventReset, Tick: 21})
	if bounce(21) != CueBounce {
		t.Error("Expected contact right after reset to sound")
	}
}

// TestSetVolumeClamps verifies the master level stays in range and zero silences
func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager(silentConfig())

	sm.SetVolume(2)
	if sm.level != 1 || sm.volume.Volume != 0 || sm.volume.Silent {
		t.Errorf("Expected full volume, got level %f volume %f", sm.level, sm.volume.Volume)
	}
	sm.SetVolume(0.5)
	if math.Abs(sm.volume.Volume+1) > 1e-9 {
		t.Errorf("Expected half level to be -1 in base 2, got %f", sm.volume.Volume)
	}
	sm.SetVolume(-1)
	if sm.level != 0 || !sm.volume.Silent {
		t.Error("Expected negative volume to clamp to silent")
	}
}

// TestGeneratorsBounded verifies every generator stays within [-1, 1] and never ends
func TestGeneratorsBounded(t *testing.T) {
	sr := beep.SampleRate(48000)
	gens := map[string]beep.Streamer{
		"chime":  NewChimeGenerator(sr),
		"whoosh": NewWhooshGenerator(sr),
		"crash":  NewCrashGenerator(sr, 1),
		"wind":   NewWindGenerator(sr, 7),
	}

	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			buf := make([][2]float64, 4800)
			energy := 0.0
			for round := 0; round < 10; round++ {
				n, ok := g.Stream(buf)
				if n != len(buf) || !ok {
					t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
				}
				for _, s := range buf {
					if math.IsNaN(s[0]) || s[0] < -1 || s[0] > 1 || s[0] != s[1] {
						t.Fatalf("Sample out of range or unbalanced: %v", s)
					}
					energy += s[0] * s[0]
				}
			}
			if energy == 0 {
				t.Error("Expected audible output")
			}
		})
	}
}
