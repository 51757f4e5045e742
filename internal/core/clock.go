package core

import "time"

// Clock is a monotonic time source sampled once per frame.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between samples are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepClock advances by a fixed interval every time it is sampled.
// It makes frame-driven simulation deterministic in tests and offline renders.
type StepClock struct {
	now  time.Time
	step time.Duration
}

// NewStepClock returns a clock that advances 1/tickRate seconds per sample.
// A non-positive tick rate falls back to 60.
func NewStepClock(tickRate int) *StepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &StepClock{
		now:  time.Unix(0, 0),
		step: time.Second / time.Duration(tickRate),
	}
}

// Now advances the clock by one step and returns the new time.
func (c *StepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// Step returns the fixed interval between samples.
func (c *StepClock) Step() time.Duration {
	return c.step
}
