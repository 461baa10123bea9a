package core

import "time"

// FixedStep paces simulation steps at a fixed rate independently of the
// display refresh rate. A zero or negative rate disables pacing, so every
// call to ShouldStep reports true.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps steps per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the step rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Reset drops accumulated time. Call it when the simulation resumes after a
// pause so the time spent paused is not replayed as a burst of steps.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	if f.step <= 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		f.accumulator = f.step
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Never queue more than one extra step; a stalled frame must not
		// turn into a fast-forward.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
