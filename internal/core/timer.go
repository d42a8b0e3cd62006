package core

import "time"

// DefaultInterval is the minimum spacing between two simulation ticks.
const DefaultInterval = 200 * time.Millisecond

// FixedStep throttles simulation updates to at most one tick per interval,
// independent of the frame rate of the caller.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedInterval constructs a FixedStep that ticks at most once per d.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
	return fs
}

// SetInterval changes the minimum spacing between ticks.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	f.step = d
}

// Interval returns the configured minimum spacing between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. The
// first call always steps; afterwards a tick is due once the interval has
// elapsed since the previous tick. Missed intervals are dropped, not replayed.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if !f.last.IsZero() && now.Sub(f.last) < f.step {
		return false
	}
	f.last = now
	return true
}

// Reset forgets the previous tick so the next ShouldStep fires immediately.
func (f *FixedStep) Reset() { f.last = time.Time{} }
