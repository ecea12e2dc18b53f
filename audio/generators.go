package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Tone constants
const (
	chimeLowHz      = 1318.5
	chimeHighHz     = 1975.5
	chimeAmplitude  = 0.35
	whooshFromHz    = 180.0
	whooshToHz      = 420.0
	whooshAmplitude = 0.3
	crashRumbleHz   = 70.0
	crashNoiseAmp   = 0.45
	crashRumbleAmp  = 0.3
	windAmplitude   = 0.08
	windGustHz      = 0.25
)

// lcg is the shared noise source of the generators
type lcg struct {
	seed int64
}

func (l *lcg) next() float64 {
	l.seed = (l.seed*1103515245 + 12345) & 0x7fffffff
	return float64(l.seed)/float64(0x7fffffff)*2 - 1
}

// ChimeGenerator plays two rising tones for a coin pickup
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := chimeLowHz
		if t > 0.04 {
			freq = chimeHighHz
		}
		sample := chimeAmplitude * math.Exp(-t*18) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }

// WhooshGenerator sweeps a filtered tone upward for a ramp launch
type WhooshGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	noise lcg
	lp    float64
}

func NewWhooshGenerator(sr beep.SampleRate) *WhooshGenerator {
	return &WhooshGenerator{sr: sr, noise: lcg{seed: 3}}
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		// Sweep completes in a quarter second then holds
		sweep := math.Min(t/0.25, 1)
		freq := whooshFromHz + (whooshToHz-whooshFromHz)*sweep
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		g.lp += 0.1 * (g.noise.next() - g.lp)
		env := math.Sin(math.Pi * math.Min(t/0.25, 1))
		sample := whooshAmplitude * env * (0.6*math.Sin(g.phase) + 0.4*g.lp)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error { return nil }

// CrashGenerator is a noise burst over a low rumble
type CrashGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise lcg
}

func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{sr: sr, noise: lcg{seed: seed}}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)
		rumble := crashRumbleAmp * math.Sin(2*math.Pi*crashRumbleHz*t)
		sample := envelope * (crashNoiseAmp*g.noise.next() + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error { return nil }

// WindGenerator is low-passed noise with a slow gust envelope, looped until stopped
type WindGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise lcg
	lp    float64
}

func NewWindGenerator(sr beep.SampleRate, seed int64) *WindGenerator {
	return &WindGenerator{sr: sr, noise: lcg{seed: seed}}
}

func (g *WindGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.lp += 0.02 * (g.noise.next() - g.lp)
		gust := 0.7 + 0.3*math.Sin(2*math.Pi*windGustHz*t)
		sample := windAmplitude * gust * g.lp * 4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WindGenerator) Err() error { return nil }
