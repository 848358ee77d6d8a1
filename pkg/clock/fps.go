package clock

import "time"

// FPSCounter averages the frame rate over fixed windows
type FPSCounter struct {
	window  time.Duration
	elapsed time.Duration
	frames  int
	fps     int
}

// NewFPSCounter creates a counter that refreshes once per window
func NewFPSCounter(window time.Duration) *FPSCounter {
	return &FPSCounter{window: window}
}

// Frame records a frame that took dt. It returns true when the reading changed window.
func (c *FPSCounter) Frame(dt time.Duration) bool {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.window {
		return false
	}

	c.fps = int(float64(c.frames) / c.elapsed.Seconds())
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS returns the frame rate measured over the last complete window
func (c *FPSCounter) FPS() int {
	return c.fps
}
