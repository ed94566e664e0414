package motion

// Clock accumulates elapsed scene time in seconds.
type Clock struct {
	Elapsed float32
	Paused  bool
}

// Tick advances the clock by dt seconds and returns the new elapsed time.
// Negative steps are ignored.
func (c *Clock) Tick(dt float32) float32 {
	if !c.Paused && dt > 0 {
		c.Elapsed += dt
	}
	return c.Elapsed
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.Elapsed = 0
}
