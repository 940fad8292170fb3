package testutil

import (
	"sync"
	"time"
)

// StepClock is a fake CPU clock for tests.
//
// Every call to Now advances the reading by a fixed step, so a sort timed
// between two calls always appears to take exactly one step. This makes
// report output byte-identical across runs for golden comparison.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Duration
	step time.Duration
	res  time.Duration
}

// NewStepClock creates a clock starting at 0 that advances by step per read.
// Resolution defaults to 1ns.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{step: step, res: time.Nanosecond}
}

// WithResolution sets the reported resolution and returns the clock.
func (c *StepClock) WithResolution(res time.Duration) *StepClock {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.res = res
	return c
}

// Now returns the current reading and advances the clock by one step.
func (c *StepClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now += c.step
	return t
}

// Resolution returns the configured resolution.
func (c *StepClock) Resolution() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.res
}

// Reads returns how many times Now has been called.
func (c *StepClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step == 0 {
		return 0
	}
	return int(c.now / c.step)
}

// Reset rewinds the clock to 0.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = 0
}
