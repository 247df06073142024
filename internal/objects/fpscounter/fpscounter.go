// Package fpscounter measures frame rate from the engine update hook.
package fpscounter

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/logger"
)

// Interval is how often the frame rate is recomputed and logged.
const Interval = time.Second

// Counter is an update-only engine object.
type Counter struct {
	engine.BaseObject

	now        func() time.Time
	windowFrom time.Time
	lastFrame  time.Time
	frames     int
	fps        float64
	frameTime  time.Duration
	log        *zap.Logger
}

var _ engine.Object = (*Counter)(nil)

// New returns a counter reading the wall clock.
func New() *Counter {
	return NewWithSource(time.Now)
}

// NewWithSource returns a counter reading time from now.
func NewWithSource(now func() time.Time) *Counter {
	return &Counter{now: now}
}

// Start resets the measurement window.
func (c *Counter) Start(engine.Host) error {
	c.log = logger.Named("fps")
	c.windowFrom = c.now()
	c.lastFrame = c.windowFrom
	c.frames = 0
	return nil
}

// Update counts one frame and publishes the rate once per Interval.
func (c *Counter) Update() {
	t := c.now()
	c.frameTime = t.Sub(c.lastFrame)
	c.lastFrame = t
	c.frames++

	elapsed := t.Sub(c.windowFrom)
	if elapsed < Interval {
		return
	}

	c.fps = float64(c.frames) / elapsed.Seconds()
	c.log.Debug("fps",
		zap.Int("frames", c.frames),
		zap.Float64("fps", c.fps),
		zap.Duration("frame_time", c.frameTime),
	)
	c.frames = 0
	c.windowFrom = t
}

// FPS returns the rate measured over the last complete interval.
func (c *Counter) FPS() float64 {
	return c.fps
}

// FrameTime returns the duration of the last frame.
func (c *Counter) FrameTime() time.Duration {
	return c.frameTime
}
