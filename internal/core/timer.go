package core

// Timer counts elapsed time up to a fixed duration. It is a plain value so it
// can be embedded in any effect record and copied freely.
type Timer struct {
	Elapsed  float64
	Duration float64
}

// NewTimer returns a timer that finishes after d seconds.
func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

// Advance adds dt to the elapsed time, saturating at the duration.
// Negative dt is ignored so the timer never runs backwards.
func (t *Timer) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Progress returns elapsed/duration in [0, 1]. A zero-length timer is
// always complete.
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return ClampF(t.Elapsed/t.Duration, 0, 1)
}

// Finished reports whether the full duration has elapsed.
func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining returns the seconds left before the timer finishes.
func (t Timer) Remaining() float64 {
	return Approach(t.Duration, t.Elapsed)
}
