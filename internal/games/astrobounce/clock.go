package astrobounce

import "time"

// Clock turns tick timestamps into a frame-normalized delta.
// A delta of 1 means exactly one target frame elapsed.
type Clock struct {
	frame   time.Duration
	last    time.Duration
	started bool
}

// NewClock creates a clock normalized to the given frame length.
func NewClock(frame time.Duration) *Clock {
	return &Clock{frame: frame}
}

// Delta returns the normalized time since the previous call.
// The first call returns 0. Timestamps going backwards yield 0.
func (c *Clock) Delta(now time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now - c.last
	c.last = now
	if elapsed <= 0 || c.frame <= 0 {
		return 0
	}
	return float64(elapsed) / float64(c.frame)
}
