package motion

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Rock is the boat's roll (about Z) and pitch (about X). The pitch carries a
// phase offset so the two never line up.
type Rock struct {
	RollDeg    float32
	RollHz     float32
	PitchDeg   float32
	PitchHz    float32
	PitchPhase float32 // radians
}

// DefaultRock returns the gentle swell used for the boat.
func DefaultRock() Rock {
	return Rock{
		RollDeg:    3.0,
		RollHz:     0.45,
		PitchDeg:   4.0,
		PitchHz:    0.5,
		PitchPhase: 1.2,
	}
}

// Angles returns roll and pitch in degrees at time t.
func (r Rock) Angles(t float32) (rollDeg, pitchDeg float32) {
	rollDeg = r.RollDeg * math32.Sin(2*math32.Pi*r.RollHz*t)
	pitchDeg = r.PitchDeg * math32.Sin(2*math32.Pi*r.PitchHz*t+r.PitchPhase)
	return rollDeg, pitchDeg
}

// Boat is the boat's placement: start position and translation-free
// orientation, taken from its base matrix.
type Boat struct {
	Start        math.Vec3
	Local        math.Mat4
	HeightOffset float32 // added to Start.Y
}

// BoatHeightOffset sits the hull slightly into the water.
const BoatHeightOffset = -0.15

// NewBoat decomposes the base matrix into start position and local frame.
func NewBoat(base math.Mat4) Boat {
	pos, local := math.Decompose(base)
	return Boat{Start: pos, Local: local, HeightOffset: BoatHeightOffset}
}

// Position returns the boat's world position for a path parameter.
func (b Boat) Position(pathParam float32) math.Vec3 {
	return math.Vec3{
		X: b.Start.X,
		Y: b.Start.Y + b.HeightOffset,
		Z: b.Start.Z + pathParam,
	}
}

// Model returns the boat's model matrix: the rocking rotations layered on
// the local frame, translated to the path position.
func (b Boat) Model(r Rock, t, pathParam float32) math.Mat4 {
	roll, pitch := r.Angles(t)
	local := math.RotateX(math.Radians(pitch)).
		Mul(math.RotateZ(math.Radians(roll))).
		Mul(b.Local)
	p := b.Position(pathParam)
	return math.Recompose(p.X, p.Y, p.Z, local)
}
