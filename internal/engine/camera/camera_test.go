package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/pkg/math"
)

func TestFreeFly_Rotation(t *testing.T) {
	c := NewFreeFly()
	c.Update(Input{Right: true}, 100)
	assert.InDelta(t, 10, c.Yaw, 1e-5)

	c.Update(Input{Left: true, Up: true}, 50)
	assert.InDelta(t, 5, c.Yaw, 1e-5)
	assert.InDelta(t, 5, c.Pitch, 1e-5)
}

func TestFreeFly_Move(t *testing.T) {
	c := NewFreeFly()
	start := c.Position

	// yaw 0, pitch 0 looks down +X
	c.Update(Input{Forward: true}, 100)
	assert.InDelta(t, start.X+1, c.Position.X, 1e-5)
	assert.InDelta(t, start.Y, c.Position.Y, 1e-6)

	c.Update(Input{Back: true}, 100)
	assert.InDelta(t, start.X, c.Position.X, 1e-5)
}

func TestFreeFly_PitchLimit(t *testing.T) {
	c := NewFreeFly()
	c.Update(Input{Up: true}, 10000)
	assert.Equal(t, float32(89), c.Pitch)

	c.PitchLimit = 0
	c.Update(Input{Up: true}, 10000)
	assert.Greater(t, c.Pitch, float32(89))
}

func TestFreeFly_BasisFallback(t *testing.T) {
	c := NewFreeFly()
	c.PitchLimit = 0
	c.Pitch = 90

	_, right, up := c.Basis()
	assert.InDelta(t, 1, right.Length(), 1e-5)
	assert.InDelta(t, 1, up.Length(), 1e-5)
}

func TestFreeFly_ViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewFreeFly()
	c.Yaw, c.Pitch = 30, -10
	v := c.ViewMatrix()
	p := v.TransformPoint(c.Position.Array())
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, p[i], 1e-5)
	}
}

func TestOrbit_PitchClamp(t *testing.T) {
	c := NewOrbit()
	c.Update(Input{Up: true}, 100000)
	assert.Equal(t, float32(60), c.Pitch)

	c.Update(Input{Down: true}, 100000)
	assert.Equal(t, float32(-60), c.Pitch)
}

func TestOrbit_YawDirections(t *testing.T) {
	c := NewOrbit()
	c.Update(Input{Left: true}, 100)
	assert.InDelta(t, 182, c.Yaw, 1e-4)
	c.Update(Input{Right: true}, 200)
	assert.InDelta(t, 178, c.Yaw, 1e-4)
}

func TestOrbit_Position(t *testing.T) {
	c := NewOrbit()
	c.Pitch = 0
	target := math.Vec3{X: 1, Y: 2, Z: 3}
	p := c.Position(target)

	// yaw 180 puts the eye on -X of the center
	assert.InDelta(t, 1-4.5, p.X, 1e-4)
	assert.InDelta(t, 3.3, p.Y, 1e-5)
	assert.InDelta(t, 3, p.Z, 1e-4)
}

func TestOrbit_SmoothingSnapsThenEases(t *testing.T) {
	c := NewOrbit()
	target := math.Vec3{}

	_, eye := c.View(target, 0)
	want := target.Sub(eye).Normalize()
	got := c.Direction()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)

	// After swinging around, the look direction is approached, not reached
	c.Yaw += 90
	c.View(target, 0.1)
	_, eye = c.View(target, 0)
	desired := target.Sub(eye).Normalize()
	assert.Less(t, c.Direction().Dot(desired), float32(0.99999))
	assert.Greater(t, c.Direction().Dot(want), float32(0))
}

func TestController_Toggle(t *testing.T) {
	c := NewController()
	require.Equal(t, ModeFreeFly, c.Mode)

	// Selection is ignored outside orbit
	assert.False(t, c.Select(actor.Hammerhead))

	assert.Equal(t, ModeOrbit, c.Toggle())
	assert.Equal(t, actor.Boat, c.Target)

	assert.True(t, c.Select(actor.WhiteTip))
	assert.Equal(t, actor.WhiteTip, c.Target)

	assert.Equal(t, ModeFreeFly, c.Toggle())
	assert.Equal(t, ModeOrbit, c.Toggle())
	assert.Equal(t, actor.Boat, c.Target)
}

func TestController_ViewUsesTarget(t *testing.T) {
	c := NewController()
	c.Toggle()
	c.Select(actor.ReefShark)

	var asked actor.Kind = -1
	_, eye := c.View(func(k actor.Kind) math.Vec3 {
		asked = k
		return math.Vec3{X: 10}
	}, 0.016)

	assert.Equal(t, actor.ReefShark, asked)
	assert.InDelta(t, 4.5, eye.Distance(math.Vec3{X: 10, Y: 1.3}), 1e-4)
}

func TestController_FreeFlyView(t *testing.T) {
	c := NewController()
	_, eye := c.View(func(actor.Kind) math.Vec3 {
		t.Fatal("free-fly view must not query actors")
		return math.Vec3{}
	}, 0.016)
	assert.Equal(t, c.Fly.Position, eye)
}

func TestProjection_Matrix(t *testing.T) {
	p := DefaultProjection()
	m := p.Matrix(16.0 / 9.0)
	assert.Equal(t, float32(-1), m[11])

	// Degenerate aspect falls back to square
	assert.Equal(t, p.Matrix(1), p.Matrix(0))
}
