package astrobounce

import "time"

// Timer is a single-fire deadline checked against tick timestamps.
// It never fires twice for one Arm and a Cancel discards it.
type Timer struct {
	deadline time.Duration
	armed    bool
}

// Arm schedules the timer to fire delay after now, replacing any pending deadline.
func (t *Timer) Arm(now, delay time.Duration) {
	t.deadline = now + delay
	t.armed = true
}

// Cancel discards a pending deadline.
func (t *Timer) Cancel() {
	t.armed = false
}

// Armed reports whether a deadline is pending.
func (t *Timer) Armed() bool {
	return t.armed
}

// Fire reports whether the deadline has passed, disarming the timer if so.
func (t *Timer) Fire(now time.Duration) bool {
	if !t.armed || now < t.deadline {
		return false
	}
	t.armed = false
	return true
}
