// Package motion evaluates the procedural animation of the scene's actors.
// Every function here is a pure function of elapsed seconds and the shared
// path parameter, so motion is independent of frame rate.
package motion

import (
	"github.com/chewxy/math32"
)

// Jump is the periodic bob-and-tilt of a swimming creature.
type Jump struct {
	Amplitude   float32 // vertical offset, world units
	Frequency   float32 // Hz
	PhaseOffset float32 // radians
	TiltDeg     float32 // tilt amplitude, degrees
}

// DefaultJump returns the shared creature jump parameters.
func DefaultJump() Jump {
	return Jump{
		Amplitude:   0.25,
		Frequency:   0.4,
		PhaseOffset: 0,
		TiltDeg:     15,
	}
}

// Phase returns 2*pi*f*t + offset + shift.
func (j Jump) Phase(t, shift float32) float32 {
	return 2*math32.Pi*j.Frequency*t + j.PhaseOffset + shift
}

// Eval returns the jump offset A*sin(phase) and tilt T*cos(phase).
func (j Jump) Eval(t, shift float32) (offset, tiltDeg float32) {
	phase := j.Phase(t, shift)
	return j.Amplitude * math32.Sin(phase), j.TiltDeg * math32.Cos(phase)
}
