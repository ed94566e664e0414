package scene

import (
	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/camera"
	"github.com/Faultbox/nightreef/internal/engine/motion"
	"github.com/Faultbox/nightreef/pkg/math"
)

// RenderState is everything that changes from frame to frame: actor poses,
// the camera, the shared path and the matrices derived for the current
// frame. One controller owns it and the passes only read it.
type RenderState struct {
	Poses [actor.KindCount]actor.Pose

	Camera     *camera.Controller
	Projection camera.Projection

	Clock motion.Clock
	Path  motion.Path
	Jump  motion.Jump
	Swim  motion.Swim
	Rock  motion.Rock
	Boat  motion.Boat
	Trim  *motion.Trim

	Width  int32
	Height int32

	// Derived by Frame.
	View        math.Mat4
	Proj        math.Mat4
	Eye         math.Vec3
	ReflectView math.Mat4
	ReflectVP   math.Mat4
	ReflectEye  math.Vec3
}

// NewRenderState places every actor at its base matrix.
func NewRenderState(width, height int32) *RenderState {
	s := &RenderState{
		Camera:     camera.NewController(),
		Projection: camera.DefaultProjection(),
		Path:       motion.DefaultPath(),
		Jump:       motion.DefaultJump(),
		Swim:       motion.DefaultSwim(),
		Rock:       motion.DefaultRock(),
		Trim:       motion.DefaultTrim(),
		Width:      width,
		Height:     height,
	}
	s.SetBases(actor.DefaultBases())
	return s
}

// SetBases replaces the base matrices and resets current poses to them.
func (s *RenderState) SetBases(bases [actor.KindCount]math.Mat4) {
	for k := range s.Poses {
		s.Poses[k] = actor.Pose{Base: bases[k], Current: bases[k]}
	}
	s.Boat = motion.NewBoat(bases[actor.Boat])
}

// Advance steps time by dt seconds and recomputes every pose.
func (s *RenderState) Advance(dt float32) {
	t := s.Clock.Tick(dt)
	s.Path.Advance(dt)
	if s.Trim != nil {
		s.Trim.Update(dt)
	}

	for _, k := range actor.Creatures {
		off := actor.CreatureOffsets(k, s.Jump, t, s.Path.Param)
		s.Poses[k].Current = actor.Compose(s.Poses[k].Base, off)
	}
	s.Poses[actor.Boat].Current = s.Boat.Model(s.Rock, t, s.Path.Param)
}

// Position returns an actor's current world position.
func (s *RenderState) Position(k actor.Kind) math.Vec3 {
	if k < 0 || k >= actor.KindCount {
		return math.Vec3{}
	}
	return s.Poses[k].Position()
}

// Model returns the matrix an actor is drawn with. The hammerhead carries
// the external trim on top of its pose.
func (s *RenderState) Model(k actor.Kind) math.Mat4 {
	m := s.Poses[k].Current
	if k == actor.Hammerhead && s.Trim != nil {
		m = m.Mul(s.Trim.Matrix())
	}
	return m
}

// Aspect returns width/height, or 1 before the first resize.
func (s *RenderState) Aspect() float32 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Resize records the drawable size.
func (s *RenderState) Resize(width, height int32) {
	s.Width = width
	s.Height = height
}

// Frame computes the camera matrices for this frame and the mirrored
// camera used by the reflection pass.
func (s *RenderState) Frame(dtSec float32) {
	s.View, s.Eye = s.Camera.View(s.Position, dtSec)
	s.Proj = s.Projection.Matrix(s.Aspect())

	s.ReflectView = s.View.Mul(math.ReflectY())
	s.ReflectVP = s.Proj.Mul(s.ReflectView)
	s.ReflectEye = math.Vec3{X: s.Eye.X, Y: -s.Eye.Y, Z: s.Eye.Z}
}

// ViewProj returns P * V for the current frame.
func (s *RenderState) ViewProj() math.Mat4 {
	return s.Proj.Mul(s.View)
}
