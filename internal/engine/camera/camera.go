// Package camera provides the free-fly and orbit cameras and the controller
// that switches between them.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Input is the set of camera keys held during a tick.
type Input struct {
	Left, Right bool
	Up, Down    bool
	Forward     bool
	Back        bool
}

// direction returns the unit vector for yaw and pitch in degrees:
// (cos yaw cos pitch, sin pitch, sin yaw cos pitch).
func direction(yawDeg, pitchDeg float32) math.Vec3 {
	yaw := math.Radians(yawDeg)
	pitch := math.Radians(pitchDeg)
	cp := math32.Cos(pitch)
	return math.Vec3{
		X: math32.Cos(yaw) * cp,
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * cp,
	}
}

// FreeFly is a first-person camera steered by yaw and pitch.
type FreeFly struct {
	Position math.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees

	RotSpeed  float32 // degrees per millisecond
	MoveSpeed float32 // units per millisecond

	// PitchLimit clamps |Pitch| when positive.
	PitchLimit float32
}

// NewFreeFly returns the free-fly camera at its start pose.
func NewFreeFly() *FreeFly {
	return &FreeFly{
		Position:   math.Vec3{X: 0, Y: 0.12, Z: 0.5},
		RotSpeed:   0.1,
		MoveSpeed:  0.01,
		PitchLimit: 89,
	}
}

// Forward returns the look direction.
func (c *FreeFly) Forward() math.Vec3 {
	return direction(c.Yaw, c.Pitch)
}

// Update applies held keys over dtMs milliseconds.
func (c *FreeFly) Update(in Input, dtMs float32) {
	rot := c.RotSpeed * dtMs
	if in.Left {
		c.Yaw -= rot
	}
	if in.Right {
		c.Yaw += rot
	}
	if in.Up {
		c.Pitch += rot
	}
	if in.Down {
		c.Pitch -= rot
	}
	if c.PitchLimit > 0 {
		c.Pitch = math.Clamp(c.Pitch, -c.PitchLimit, c.PitchLimit)
	}

	step := c.Forward().Scale(c.MoveSpeed * dtMs)
	if in.Forward {
		c.Position = c.Position.Add(step)
	}
	if in.Back {
		c.Position = c.Position.Sub(step)
	}
}

// Basis returns the orthonormal camera frame. When forward is parallel to
// world up the right vector is taken against world Z instead.
func (c *FreeFly) Basis() (forward, right, up math.Vec3) {
	forward = c.Forward()
	right = forward.Cross(math.Up)
	if right.Length() < 1e-6 {
		right = forward.Cross(math.Vec3{Z: 1})
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// ViewMatrix returns lookAt(pos, pos+forward, up).
func (c *FreeFly) ViewMatrix() math.Mat4 {
	forward, _, up := c.Basis()
	return math.LookAt(c.Position, c.Position.Add(forward), up)
}

// Orbit circles a target at a fixed radius and eases its look direction
// toward it.
type Orbit struct {
	Yaw   float32 // degrees
	Pitch float32 // degrees

	RotSpeed      float32 // degrees per millisecond
	MinPitch      float32
	MaxPitch      float32
	Radius        float32
	Height        float32 // orbit center above the target
	SmoothingRate float32 // per second

	dir    math.Vec3
	hasDir bool
}

// NewOrbit returns the orbit camera with its start angles.
func NewOrbit() *Orbit {
	return &Orbit{
		Yaw:           180,
		Pitch:         10,
		RotSpeed:      0.02,
		MinPitch:      -60,
		MaxPitch:      60,
		Radius:        4.5,
		Height:        1.3,
		SmoothingRate: 2.0,
	}
}

// Update applies held keys over dtMs milliseconds and clamps the pitch.
func (c *Orbit) Update(in Input, dtMs float32) {
	rot := c.RotSpeed * dtMs
	if in.Left {
		c.Yaw += rot
	}
	if in.Right {
		c.Yaw -= rot
	}
	if in.Up {
		c.Pitch += rot
	}
	if in.Down {
		c.Pitch -= rot
	}
	c.Pitch = math.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// Position returns the eye position around target.
func (c *Orbit) Position(target math.Vec3) math.Vec3 {
	center := target.Add(math.Vec3{Y: c.Height})
	return center.Add(direction(c.Yaw, c.Pitch).Scale(c.Radius))
}

// ResetSmoothing makes the next View snap to the target.
func (c *Orbit) ResetSmoothing() {
	c.dir = math.Vec3{}
	c.hasDir = false
}

// Direction returns the current smoothed look direction.
func (c *Orbit) Direction() math.Vec3 {
	return c.dir
}

// View returns the view matrix and eye for target after dtSec seconds.
func (c *Orbit) View(target math.Vec3, dtSec float32) (math.Mat4, math.Vec3) {
	eye := c.Position(target)
	desired := target.Sub(eye).Normalize()

	if !c.hasDir {
		c.dir = desired
		c.hasDir = true
	}
	t := math.Clamp(dtSec*c.SmoothingRate, 0, 1)
	c.dir = c.dir.Lerp(desired, t).Normalize()

	return math.LookAt(eye, eye.Add(c.dir), math.Up), eye
}

// Projection holds the perspective parameters.
type Projection struct {
	FovDeg float32
	Near   float32
	Far    float32
}

// DefaultProjection returns a 45 degree projection spanning 0.01 to 5000.
func DefaultProjection() Projection {
	return Projection{FovDeg: 45, Near: 0.01, Far: 5000}
}

// Matrix returns the projection for a viewport aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(p.FovDeg), aspect, p.Near, p.Far)
}
