package engine

import "time"

// SimClock is simulation time advanced only by ticks
// Wall-clock pacing never leaks in, so a run replays identically from the same dt sequence
type SimClock struct {
	elapsed time.Duration
	ticks   uint64
	paused  bool
}

func NewSimClock() *SimClock {
	return &SimClock{}
}

// Advance moves time forward by dt and returns the effective step, zero while paused
func (c *SimClock) Advance(dt time.Duration) time.Duration {
	if c.paused || dt <= 0 {
		return 0
	}
	c.elapsed += dt
	c.ticks++
	return dt
}

// Elapsed returns simulation time since the run started
func (c *SimClock) Elapsed() time.Duration {
	return c.elapsed
}

// Ticks returns the number of non-paused steps taken
func (c *SimClock) Ticks() uint64 {
	return c.ticks
}

func (c *SimClock) Pause()         { c.paused = true }
func (c *SimClock) Resume()        { c.paused = false }
func (c *SimClock) IsPaused() bool { return c.paused }

func (c *SimClock) Reset() {
	*c = SimClock{}
}
