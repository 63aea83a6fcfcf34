package core

import "time"

// FixedStep releases simulation ticks at a steady rate regardless of how
// often the frame loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
}

// NewFixedStep constructs a FixedStep targeting tps ticks per second. At most
// maxBurst ticks are released per poll so a stalled frame does not trigger a
// long catch-up.
func NewFixedStep(tps, maxBurst int) *FixedStep {
	fs := &FixedStep{maxBurst: max(maxBurst, 1)}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Reset discards accumulated time, e.g. when the simulation is paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due returns how many ticks should run at now.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > f.maxBurst {
		f.accumulator = 0
		return f.maxBurst
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
