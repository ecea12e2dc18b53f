package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Cue is one sound the game can play
type Cue uint8

const (
	CueNone Cue = iota
	CueCoin
	CueBounce
	CueCrash
	CueWindStart
	CueWindStop
)

// SoundManager plays cues through a single beep mixer
// Every method is safe to call when audio is disabled or the speaker failed to open
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	wind        *beep.Ctrl
	initialized bool
	enabled     bool
	level       float64

	// lastBounceTick suppresses retriggering while the skier stays on one ramp
	lastBounceTick uint64

	log *logrus.Entry
}

// NewSoundManager creates a manager from the audio settings
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:   mixer,
		enabled: cfg.Enabled,
		level:   cfg.Volume,
		log:     logrus.WithField("component", "audio"),
	}
	sm.volume = &effects.Volume{Streamer: mixer, Base: 2}
	sm.setLevel(cfg.Volume)
	return sm
}

// Initialize opens the speaker
// Failure leaves the manager silent; the caller logs and carries on
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	sm.log.WithField("volume", sm.level).Debug("speaker ready")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.wind != nil {
		sm.wind.Paused = true
		sm.wind = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Active reports whether sound is actually reaching the speaker
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// HandleEvents plays the cues for a tick's events
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, e := range events {
		sm.Play(sm.cueFor(e))
	}
}

// cueFor maps a gameplay event to a cue
// A bounce only sounds on the first tick of contact with a ramp
func (sm *SoundManager) cueFor(e engine.Event) Cue {
	switch e.Type {
	case engine.EventPickup:
		return CueCoin
	case engine.EventBounce:
		prev := sm.lastBounceTick
		sm.lastBounceTick = e.Tick
		if prev != 0 && e.Tick <= prev+1 {
			return CueNone
		}
		return CueBounce
	case engine.EventDeath:
		return CueCrash
	case engine.EventGameOver:
		return CueWindStop
	case engine.EventReset:
		sm.lastBounceTick = 0
		return CueWindStart
	default:
		return CueNone
	}
}

// Play starts one cue
func (sm *SoundManager) Play(c Cue) {
	switch c {
	case CueCoin:
		sm.playOnce(NewChimeGenerator(sampleRate), constants.CoinChimeDuration)
	case CueBounce:
		sm.playOnce(NewWhooshGenerator(sampleRate), constants.BounceDuration)
	case CueCrash:
		sm.StopWind()
		sm.playOnce(NewCrashGenerator(sampleRate, 1), constants.CrashDuration)
	case CueWindStart:
		sm.StartWind()
	case CueWindStop:
		sm.StopWind()
	}
}

// StartWind loops the wind bed while the skier is running
func (sm *SoundManager) StartWind() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.wind != nil && !sm.wind.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewWindGenerator(sampleRate, 7)}
	sm.wind = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopWind silences the wind bed
func (sm *SoundManager) StopWind() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.wind != nil {
		speaker.Lock()
		sm.wind.Paused = true
		speaker.Unlock()
		sm.wind = nil
	}
}

// SetVolume changes the master level in [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.setLevel(v)
}

func (sm *SoundManager) setLevel(v float64) {
	v = math.Max(0, math.Min(1, v))
	sm.level = v
	sm.volume.Silent = v == 0
	if v > 0 {
		sm.volume.Volume = math.Log2(v)
	}
}

func (sm *SoundManager) playOnce(s beep.Streamer, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}
