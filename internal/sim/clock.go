package sim

import "time"

// FixedClock converts variable frame time into a whole number of fixed
// ticks and tracks how far the next tick has progressed.
type FixedClock struct {
	step     time.Duration
	overstep time.Duration
	maxTicks int
}

// NewFixedClock creates a clock with the given tick length. maxTicks caps the
// ticks run for a single frame; 0 means no cap.
func NewFixedClock(step time.Duration, maxTicks int) *FixedClock {
	return &FixedClock{step: step, maxTicks: maxTicks}
}

// Step returns the fixed tick length.
func (c *FixedClock) Step() time.Duration {
	return c.step
}

// StepSeconds returns the fixed tick length in seconds.
func (c *FixedClock) StepSeconds() float32 {
	return float32(c.step.Seconds())
}

// Advance accumulates elapsed real time and returns the number of fixed
// ticks now due. When the cap is hit, the whole ticks beyond it are dropped
// and only the partial tick is kept.
func (c *FixedClock) Advance(elapsed time.Duration) int {
	if elapsed <= 0 || c.step <= 0 {
		return 0
	}
	c.overstep += elapsed
	n := int(c.overstep / c.step)
	if c.maxTicks > 0 && n > c.maxTicks {
		c.overstep %= c.step
		return c.maxTicks
	}
	c.overstep -= time.Duration(n) * c.step
	return n
}

// Fraction returns the progress toward the next tick in [0, 1).
func (c *FixedClock) Fraction() float32 {
	if c.step <= 0 {
		return 0
	}
	return float32(float64(c.overstep) / float64(c.step))
}
