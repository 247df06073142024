// Package clock tracks engine run time and per-frame delta time.
package clock

import "time"

// Clock measures wall time since construction and between ticks.
type Clock struct {
	now      func() time.Time
	start    time.Time
	lastTick time.Time
}

// New returns a clock started now.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock reading time from now.
func NewWithSource(now func() time.Time) *Clock {
	start := now()
	return &Clock{
		now:      now,
		start:    start,
		lastTick: start,
	}
}

// Tick returns the seconds elapsed since the previous Tick (or since
// construction) and moves the tick reference to now.
func (c *Clock) Tick() float32 {
	now := c.now()
	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt < 0 {
		return 0
	}
	return float32(dt.Seconds())
}

// RunTime returns the seconds elapsed since construction.
func (c *Clock) RunTime() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}
