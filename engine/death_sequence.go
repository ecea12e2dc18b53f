package engine

import "time"

// DeathSequence is the fixed-duration transition between a lethal hit and game over
// It can be cancelled at any point and always ends in the finished state
type DeathSequence struct {
	duration time.Duration
	elapsed  time.Duration
	side     int
	active   bool
	finished bool
}

func NewDeathSequence(duration time.Duration) *DeathSequence {
	return &DeathSequence{duration: duration}
}

// Start begins the transition toward side
func (d *DeathSequence) Start(side int) {
	d.side = side
	d.elapsed = 0
	d.active = true
	d.finished = false
	if d.duration <= 0 {
		d.finish()
	}
}

// Advance steps the transition and reports whether it just finished
func (d *DeathSequence) Advance(dt time.Duration) bool {
	if !d.active {
		return false
	}
	d.elapsed += dt
	if d.elapsed >= d.duration {
		d.finish()
		return true
	}
	return false
}

// Cancel jumps straight to the finished state
func (d *DeathSequence) Cancel() bool {
	if !d.active {
		return false
	}
	d.finish()
	return true
}

// Progress returns completion in [0, 1]
func (d *DeathSequence) Progress() float64 {
	if d.finished {
		return 1
	}
	if !d.active || d.duration <= 0 {
		return 0
	}
	return min(float64(d.elapsed)/float64(d.duration), 1)
}

func (d *DeathSequence) Active() bool   { return d.active }
func (d *DeathSequence) Finished() bool { return d.finished }
func (d *DeathSequence) Side() int      { return d.side }

func (d *DeathSequence) Reset() {
	*d = DeathSequence{duration: d.duration}
}

func (d *DeathSequence) finish() {
	d.elapsed = d.duration
	d.active = false
	d.finished = true
}
