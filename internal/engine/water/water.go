// Package water provides the ocean plane geometry and CPU versions of the
// reflection math used by the water shader.
package water

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Stride is the byte size of one plane vertex: position(3) + uv(2).
const Stride = 5 * 4

// DefaultHalfSize is the half extent of the ocean quad in world units.
const DefaultHalfSize = 400.0

// DefaultUVScale scales the quad's far-edge v coordinate.
const DefaultUVScale = 0.05

// NormalPlaceholder is a flat normal-map texel used until the real map
// arrives.
var NormalPlaceholder = [4]uint8{128, 128, 255, 255}

// Plane holds water plane geometry ready for GPU upload.
type Plane struct {
	Vertices []float32 // two triangles, x,y,z,u,v per vertex
	Level    float32   // Y of the surface
}

// VertexCount returns the number of vertices in the plane.
func (p *Plane) VertexCount() int32 {
	return int32(len(p.Vertices) / 5)
}

// BuildPlane creates a square at y = level spanning [-half, half] on X and
// Z. u runs 0..1 across X, v runs 0..half*uvScale across Z.
func BuildPlane(half, level, uvScale float32) *Plane {
	v := half * uvScale
	return &Plane{
		Vertices: []float32{
			-half, level, -half, 0, 0,
			half, level, -half, 1, 0,
			half, level, half, 1, v,
			-half, level, -half, 0, 0,
			half, level, half, 1, v,
			-half, level, half, 0, v,
		},
		Level: level,
	}
}

// Shading constants shared with the water fragment shader.
const (
	FresnelF0       = 0.45
	PlanarWeight    = 0.4
	DistortStrength = 0.18
	WaveScale       = 2.0
	DeepShade       = 0.02
	ShallowShade    = 0.16
)

// Fresnel is Schlick's approximation F0 + (1-F0)(1-cos)^5 with cos clamped
// to [0, 1].
func Fresnel(cosTheta float32) float32 {
	c := math.Clamp(cosTheta, 0, 1)
	return FresnelF0 + (1-FresnelF0)*math32.Pow(1-c, 5)
}

// ReflectionMask is 1 when the reflected point's NDC depth lies in [0, 1]
// and 0 otherwise, matching step(0, z) * step(z, 1).
func ReflectionMask(ndcZ float32) float32 {
	if ndcZ >= 0 && ndcZ <= 1 {
		return 1
	}
	return 0
}

// ReflectionUV projects a world point with the reflected view-projection,
// offsets it by the ripple and clamps it to the texture. It also returns
// the frustum mask for the point.
func ReflectionUV(reflectVP math.Mat4, world math.Vec3, ripple [2]float32) (uv [2]float32, mask float32) {
	clip := reflectVP.MulVec4(math.Vec4{world.X, world.Y, world.Z, 1})
	if clip[3] == 0 {
		return [2]float32{0.5, 0.5}, 0
	}
	nx, ny, nz := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
	uv[0] = math.Clamp(nx*0.5+0.5+ripple[0]*DistortStrength, 0, 1)
	uv[1] = math.Clamp(ny*0.5+0.5+ripple[1]*DistortStrength, 0, 1)
	return uv, ReflectionMask(nz)
}

// BlendReflection combines the environment and masked planar reflections
// and mixes the result over the lit water color by the Fresnel term.
func BlendReflection(lit, env, planar [3]float32, mask, fresnel float32) [3]float32 {
	var out [3]float32
	for i := range out {
		refl := (1-PlanarWeight)*env[i] + PlanarWeight*planar[i]*mask
		out[i] = lit[i]*(1-fresnel) + refl*fresnel
	}
	return out
}

// BaseShade returns the unlit water gray for the normal-map z component.
func BaseShade(nz float32) float32 {
	f := 0.5 + 0.5*nz
	return DeepShade*(1-f) + ShallowShade*f
}
