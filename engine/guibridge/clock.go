package guibridge

import "time"

// FrameClock accumulates per-frame deltas into the GUI's monotonic time.
type FrameClock struct {
	elapsed float64
}

// Advance adds dt (negative values count as zero) and returns the total in
// seconds.
func (c *FrameClock) Advance(dt time.Duration) float64 {
	if dt > 0 {
		c.elapsed += dt.Seconds()
	}
	return c.elapsed
}

func (c *FrameClock) Seconds() float64 { return c.elapsed }
