package host

import "time"

// Timer measures the time between frames.
type Timer struct {
	now  func() time.Time
	last time.Time
}

// NewTimer returns a timer reading the wall clock.
func NewTimer() *Timer {
	return NewTimerWith(time.Now)
}

// NewTimerWith returns a timer reading now. The first Step reports zero.
func NewTimerWith(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Step returns the time since the previous Step and restarts the interval.
func (t *Timer) Step() time.Duration {
	n := t.now()
	if t.last.IsZero() {
		t.last = n
		return 0
	}
	d := n.Sub(t.last)
	t.last = n
	return d
}
