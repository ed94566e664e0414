package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/nightreef/pkg/math"
)

func TestMoon(t *testing.T) {
	m := Moon()
	assert.InDelta(t, 1, m.Direction.Length(), 1e-6)
	assert.InDelta(t, 0, m.Direction.X, 1e-6)
	assert.Greater(t, m.Direction.Z, m.Direction.Y)
}

func TestDirectionFromAngles(t *testing.T) {
	d := DirectionFromAngles(0, 90)
	assert.InDelta(t, 1, d.Y, 1e-6)

	d = DirectionFromAngles(90, 0)
	assert.InDelta(t, 1, d.X, 1e-6)
	assert.InDelta(t, 0, d.Z, 1e-6)
}

func TestShade_BackLitIsAmbientOnly(t *testing.T) {
	l := Directional{Direction: math.Vec3{Y: 1}, Color: [3]float32{1, 1, 1}}
	base := [3]float32{0.5, 0.5, 0.5}

	got := Shade(l, Creature, base, math.Vec3{Y: -1}, math.Vec3{Y: -1})
	for i := range got {
		assert.InDelta(t, 0.5*0.15, got[i], 1e-6)
	}
}

func TestShade_HeadOn(t *testing.T) {
	l := Directional{Direction: math.Vec3{Y: 1}, Color: [3]float32{1, 1, 1}}
	base := [3]float32{1, 0, 0}

	got := Shade(l, Water, base, math.Vec3{Y: 1}, math.Vec3{Y: 1})
	// ambient + full diffuse + full specular
	assert.InDelta(t, 0.1+0.7+0.8, got[0], 1e-5)
	assert.InDelta(t, 0.8, got[1], 1e-5)
}
