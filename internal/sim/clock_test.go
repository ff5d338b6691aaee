package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockAdvance(t *testing.T) {
	c := NewFixedClock(tick, 0)

	assert.Equal(t, 0, c.Advance(10*time.Millisecond))
	assert.InDelta(t, 0.64, c.Fraction(), 1e-6)

	assert.Equal(t, 1, c.Advance(10*time.Millisecond))
	assert.InDelta(t, 0.28, c.Fraction(), 1e-6)

	assert.Equal(t, 64, c.Advance(time.Second))
	assert.InDelta(t, 0.28, c.Fraction(), 1e-6)
}

func TestFixedClockCap(t *testing.T) {
	c := NewFixedClock(tick, 8)

	assert.Equal(t, 8, c.Advance(time.Second))
	assert.Equal(t, float32(0), c.Fraction(), "whole ticks past the cap are dropped")

	assert.Equal(t, 8, c.Advance(time.Second+5*time.Millisecond))
	assert.InDelta(t, 0.32, c.Fraction(), 1e-6)
}

func TestFixedClockIgnoresNonPositiveElapsed(t *testing.T) {
	c := NewFixedClock(tick, 8)

	assert.Equal(t, 0, c.Advance(0))
	assert.Equal(t, 0, c.Advance(-time.Second))
	assert.Equal(t, float32(0), c.Fraction())
	assert.Equal(t, float32(1.0/64.0), c.StepSeconds())
}
