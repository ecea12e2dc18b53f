package constants

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CoinChimeDuration, BounceDuration and CrashDuration are one-shot cue lengths
	CoinChimeDuration = 120 * time.Millisecond
	BounceDuration    = 250 * time.Millisecond
	CrashDuration     = 600 * time.Millisecond
)
