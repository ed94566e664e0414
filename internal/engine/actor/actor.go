// Package actor identifies the animated objects in the scene and composes
// their model matrices.
package actor

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/internal/engine/motion"
	"github.com/Faultbox/nightreef/pkg/math"
)

// Kind identifies one of the scene's actors.
type Kind int

const (
	ReefShark Kind = iota
	Hammerhead
	WhiteTip
	Boat

	KindCount
)

// Creatures lists the actors drawn from the shared creature buffer, in
// buffer order.
var Creatures = [...]Kind{ReefShark, Hammerhead, WhiteTip}

func (k Kind) String() string {
	switch k {
	case ReefShark:
		return "reef_shark"
	case Hammerhead:
		return "hammerhead"
	case WhiteTip:
		return "white_tip"
	case Boat:
		return "boat"
	default:
		return "unknown"
	}
}

// ParseKind maps a name produced by String back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// IsCreature reports whether the actor swims (bobs and tilts).
func (k Kind) IsCreature() bool {
	return k == ReefShark || k == Hammerhead || k == WhiteTip
}

// Swims reports whether the actor gets the body-wave deformation.
func (k Kind) Swims() bool {
	return k == ReefShark
}

// Pose pairs an actor's fixed base matrix with its model matrix for the
// current frame.
type Pose struct {
	Base    math.Mat4
	Current math.Mat4
}

// Position returns the translation of the current model matrix.
func (p Pose) Position() math.Vec3 {
	return p.Current.Translation()
}

// Offsets are the per-frame adjustments applied on top of a base matrix.
type Offsets struct {
	Bob     float32 // vertical, world units
	TiltDeg float32 // about X
	Forward float32 // along Z
}

// Compose returns world * base * T(0, bob, 0) * RotX(tilt) * T(0, 0, fwd).
// The world matrix is the identity.
func Compose(base math.Mat4, off Offsets) math.Mat4 {
	return math.Identity().
		Mul(base).
		Mul(math.Translate(0, off.Bob, 0)).
		Mul(math.RotateX(math.Radians(off.TiltDeg))).
		Mul(math.Translate(0, 0, off.Forward))
}

// CreatureOffsets evaluates the jump for a creature at time t. The reef
// shark and white-tip dip while tilting nose-up; the hammerhead rises
// with the opposite tilt. The white-tip runs a quarter cycle ahead.
func CreatureOffsets(k Kind, j motion.Jump, t, pathParam float32) Offsets {
	switch k {
	case ReefShark:
		bob, tilt := j.Eval(t, 0)
		return Offsets{Bob: -bob, TiltDeg: tilt, Forward: pathParam}
	case Hammerhead:
		bob, tilt := j.Eval(t, 0)
		return Offsets{Bob: bob, TiltDeg: -tilt, Forward: pathParam}
	case WhiteTip:
		bob, tilt := j.Eval(t, math32.Pi/2)
		return Offsets{Bob: -bob, TiltDeg: tilt, Forward: pathParam}
	default:
		return Offsets{Forward: pathParam}
	}
}

// DefaultBases returns the placement of every actor before animation.
func DefaultBases() [KindCount]math.Mat4 {
	var b [KindCount]math.Mat4
	b[ReefShark] = math.Scale(0.1, 0.1, 0.1).
		Mul(math.Translate(0.5, 0.1, 0))
	b[Hammerhead] = math.Scale(0.003, 0.003, 0.003).
		Mul(math.Translate(0.1, 0.1, -1.2)).
		Mul(math.RotateY(math.Radians(270)))
	b[WhiteTip] = math.Scale(0.006, 0.006, 0.006).
		Mul(math.Translate(-0.9, 0.1, 0.5)).
		Mul(math.RotateY(math.Radians(180)))
	b[Boat] = math.Scale(0.001, 0.001, 0.001).
		Mul(math.RotateX(math.Radians(270))).
		Mul(math.RotateY(math.Radians(90))).
		Mul(math.Translate(0.8, 0, 1.4))
	return b
}
