package core

import "time"

const fpsWindow = time.Second

// Clock measures frame delta time and a frames-per-second rate that is
// recomputed once per one-second window.
type Clock struct {
	last        time.Time
	windowStart time.Time
	frames      int
	fps         int
	started     bool
}

func NewClock() *Clock { return &Clock{} }

// Tick records a frame at now. The first tick returns a zero delta.
func (c *Clock) Tick(now time.Time) (dt time.Duration, fps int) {
	if !c.started {
		c.started = true
		c.last = now
		c.windowStart = now
	}
	dt = now.Sub(c.last)
	c.last = now

	c.frames++
	if now.Sub(c.windowStart) >= fpsWindow {
		c.fps = c.frames
		c.frames = 0
		c.windowStart = now
	}
	return dt, c.fps
}

// FPS returns the rate of the last completed window.
func (c *Clock) FPS() int { return c.fps }
