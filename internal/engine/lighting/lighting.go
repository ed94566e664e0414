// Package lighting provides the scene's directional moon light and the
// Phong material presets used by each shader program.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Directional is a light infinitely far away.
type Directional struct {
	Direction math.Vec3 // unit vector pointing toward the light
	Color     [3]float32
}

// Moon returns the cool, slightly elevated light used for the night scene.
func Moon() Directional {
	return Directional{
		Direction: math.Vec3{X: 0, Y: 0.6, Z: 1}.Normalize(),
		Color:     [3]float32{0.6, 0.7, 1.0},
	}
}

// DirectionFromAngles converts an azimuth around Y and an elevation above
// the horizon, both in degrees, to a unit direction.
func DirectionFromAngles(azimuthDeg, elevationDeg float32) math.Vec3 {
	az := math.Radians(azimuthDeg)
	el := math.Radians(elevationDeg)
	return math.Vec3{
		X: math32.Cos(el) * math32.Sin(az),
		Y: math32.Sin(el),
		Z: math32.Cos(el) * math32.Cos(az),
	}
}

// Material holds the Phong coefficients uploaded with a program.
type Material struct {
	Shininess float32
	Specular  float32
	Diffuse   float32
	Ambient   float32
}

// Creature is glossy skin.
var Creature = Material{Shininess: 84, Specular: 1.4, Diffuse: 0.7, Ambient: 0.15}

// Boat is painted wood.
var Boat = Material{Shininess: 64, Specular: 0.8, Diffuse: 0.7, Ambient: 0.15}

// Water is the ocean surface before reflections are mixed in.
var Water = Material{Shininess: 64, Specular: 0.8, Diffuse: 0.7, Ambient: 0.1}

// Shade evaluates the same Phong model as the fragment shaders for a base
// color, unit normal and unit view direction (surface toward eye).
func Shade(l Directional, m Material, base [3]float32, normal, view math.Vec3) [3]float32 {
	ndotl := normal.Dot(l.Direction)
	// reflect(-L, N) = -L + 2(N.L)N
	refl := l.Direction.Scale(-1).Add(normal.Scale(2 * ndotl)).Normalize()
	spec := math32.Pow(max(0, view.Dot(refl)), m.Shininess) * m.Specular
	diff := max(ndotl, 0) * m.Diffuse

	var out [3]float32
	for i := range out {
		out[i] = base[i]*m.Ambient + base[i]*diff*l.Color[i] + spec*l.Color[i]
	}
	return out
}
