package motion

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Swim holds the body-wave parameters uploaded to the creature shader.
type Swim struct {
	Amplitude  float32 // lateral wag
	WaveNumber float32 // phase per unit along the body
	Speed      float32 // phase per second
	Twist      float32 // radians of roll per unit of wag
}

// DefaultSwim returns the reef shark body wave.
func DefaultSwim() Swim {
	return Swim{Amplitude: 0.6, WaveNumber: 0.2, Speed: 4.0, Twist: 0.45}
}

// Vec4 packs the parameters in shader order.
func (s Swim) Vec4() [4]float32 {
	return [4]float32{s.Amplitude, s.WaveNumber, s.Speed, s.Twist}
}

// SwimProfile describes a mesh's body axes, derived once from its bounds.
type SwimProfile struct {
	LongMask      math.Vec3
	LatMask       math.Vec3
	MinAlong      float32
	InvRangeAlong float32
}

// ProfileFromBounds picks the largest extent as the long axis. Ties go to Z,
// then Y. The lateral axis is X unless the body runs along X, then Z.
func ProfileFromBounds(min, max [3]float32) SwimProfile {
	spanX := max[0] - min[0]
	spanY := max[1] - min[1]
	spanZ := max[2] - min[2]

	switch {
	case spanZ >= spanX && spanZ >= spanY:
		return SwimProfile{
			LongMask:      math.Vec3{Z: 1},
			LatMask:       math.Vec3{X: 1},
			MinAlong:      min[2],
			InvRangeAlong: inverse(spanZ),
		}
	case spanY >= spanX && spanY >= spanZ:
		return SwimProfile{
			LongMask:      math.Vec3{Y: 1},
			LatMask:       math.Vec3{X: 1},
			MinAlong:      min[1],
			InvRangeAlong: inverse(spanY),
		}
	default:
		return SwimProfile{
			LongMask:      math.Vec3{X: 1},
			LatMask:       math.Vec3{Z: 1},
			MinAlong:      min[0],
			InvRangeAlong: inverse(spanX),
		}
	}
}

func inverse(span float32) float32 {
	if span > 0 {
		return 1 / span
	}
	return 0
}

// Ramp returns the wag weight clamp((along-min)*invRange, 0, 1): zero at the
// head end of the body, one at the tail.
func (p SwimProfile) Ramp(along float32) float32 {
	return math.Clamp((along-p.MinAlong)*p.InvRangeAlong, 0, 1)
}

// Displace applies the body wave to a vertex. It mirrors the creature
// vertex shader and exists so the deformation can be checked on the CPU.
func (s Swim) Displace(p SwimProfile, time float32, pos, normal math.Vec3) (math.Vec3, math.Vec3) {
	along := pos.Dot(p.LongMask)
	t := p.Ramp(along)
	phase := along*s.WaveNumber + time*s.Speed
	wag := math32.Sin(phase) * s.Amplitude * t

	pos = pos.Add(p.LatMask.Scale(wag))

	axis := p.LongMask.Cross(p.LatMask).Normalize()
	theta := wag * s.Twist
	return rotate(pos, axis, theta), rotate(normal, axis, theta)
}

// rotate turns v about a unit axis (Rodrigues).
func rotate(v, axis math.Vec3, theta float32) math.Vec3 {
	c, s := math32.Cos(theta), math32.Sin(theta)
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale((1 - c) * axis.Dot(v)))
}
