package input

import "time"

// Steering turns discrete key presses into a held lateral intent
// Terminals deliver key repeats rather than key-up events, so each press
// keeps the direction active for the hold window
type Steering struct {
	hold      time.Duration
	dir       int
	remaining time.Duration
}

// NewSteering creates steering with the given hold window
func NewSteering(hold time.Duration) *Steering {
	return &Steering{hold: hold}
}

// Press sets the direction and restarts the hold window
// A zero direction releases immediately
func (s *Steering) Press(dir int) {
	if dir == 0 {
		s.Release()
		return
	}
	if dir < 0 {
		s.dir = -1
	} else {
		s.dir = 1
	}
	s.remaining = s.hold
}

// Advance consumes the hold window and returns the intent for this frame
func (s *Steering) Advance(dt time.Duration) int {
	if s.dir == 0 {
		return 0
	}
	dir := s.dir
	s.remaining -= dt
	if s.remaining <= 0 {
		s.dir = 0
		s.remaining = 0
	}
	return dir
}

// Intent returns the current direction without consuming time
func (s *Steering) Intent() int {
	return s.dir
}

// Release drops any held direction
func (s *Steering) Release() {
	s.dir = 0
	s.remaining = 0
}
