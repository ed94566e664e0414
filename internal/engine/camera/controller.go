package camera

import (
	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/pkg/math"
)

// Mode selects which camera drives the view.
type Mode int

const (
	ModeFreeFly Mode = iota
	ModeOrbit
)

func (m Mode) String() string {
	if m == ModeOrbit {
		return "orbit"
	}
	return "free_fly"
}

// Controller owns both cameras and exactly one active mode.
type Controller struct {
	Mode   Mode
	Target actor.Kind

	Fly   *FreeFly
	Orbit *Orbit
}

// NewController returns a controller in free-fly mode.
func NewController() *Controller {
	return &Controller{
		Mode:   ModeFreeFly,
		Target: actor.Boat,
		Fly:    NewFreeFly(),
		Orbit:  NewOrbit(),
	}
}

// Toggle switches mode. Entering orbit targets the boat and drops any
// smoothed direction.
func (c *Controller) Toggle() Mode {
	if c.Mode == ModeOrbit {
		c.Mode = ModeFreeFly
		return c.Mode
	}
	c.Mode = ModeOrbit
	c.Target = actor.Boat
	c.Orbit.ResetSmoothing()
	return c.Mode
}

// Select changes the orbit target. It is ignored in free-fly mode.
func (c *Controller) Select(k actor.Kind) bool {
	if c.Mode != ModeOrbit || k < 0 || k >= actor.KindCount {
		return false
	}
	if k != c.Target {
		c.Target = k
		c.Orbit.ResetSmoothing()
	}
	return true
}

// Update routes held keys to the active camera.
func (c *Controller) Update(in Input, dtMs float32) {
	if c.Mode == ModeOrbit {
		c.Orbit.Update(in, dtMs)
		return
	}
	c.Fly.Update(in, dtMs)
}

// View returns the view matrix and eye position. position reports an
// actor's current world position.
func (c *Controller) View(position func(actor.Kind) math.Vec3, dtSec float32) (math.Mat4, math.Vec3) {
	if c.Mode == ModeOrbit {
		return c.Orbit.View(position(c.Target), dtSec)
	}
	return c.Fly.ViewMatrix(), c.Fly.Position
}
