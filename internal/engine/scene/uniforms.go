package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/lighting"
	"github.com/Faultbox/nightreef/pkg/math"
)

// Texture units shared by the programs.
const (
	unitMain       = 0
	unitReflection = 1
	unitSkybox     = 2
)

// program is a linked shader program. id is zero when linking failed.
type program struct {
	name string
	id   gfx.ProgramID
}

func (p program) ok() bool { return p.id != 0 }

// link compiles a program and logs the failure. A failed program leaves
// its pass disabled for the rest of the run.
func link(dev gfx.Device, log *zap.Logger, name, vs, fs string) program {
	id, err := dev.CompileProgram(name, vs, fs)
	if err != nil {
		log.Error("shader program unavailable", zap.String("program", name), zap.Error(err))
		return program{name: name}
	}
	return program{name: name, id: id}
}

// locator looks up uniforms of one program and warns about each missing
// name once, at link time.
type locator struct {
	dev gfx.Device
	log *zap.Logger
	p   program
}

func (l locator) loc(name string) int32 {
	loc := l.dev.UniformLocation(l.p.id, name)
	if loc < 0 {
		l.log.Warn("uniform not found",
			zap.String("program", l.p.name),
			zap.String("uniform", name))
	}
	return loc
}

type transformUniforms struct {
	model, world, camera int32
}

func newTransformUniforms(l locator) transformUniforms {
	return transformUniforms{
		model:  l.loc("u_Model"),
		world:  l.loc("u_World"),
		camera: l.loc("u_Camera"),
	}
}

func (u transformUniforms) set(dev gfx.Device, model, viewProj math.Mat4) {
	dev.SetMat4(u.model, model)
	dev.SetMat4(u.world, math.Identity())
	dev.SetMat4(u.camera, viewProj)
}

// lightUniforms are the moonlight inputs every lit program shares.
type lightUniforms struct {
	sunDir, sunColor, eyePos      int32
	shiny, spec, diffuse, ambient int32
}

func newLightUniforms(l locator) lightUniforms {
	return lightUniforms{
		sunDir:   l.loc("sunDirection"),
		sunColor: l.loc("sunColor"),
		eyePos:   l.loc("eyePos"),
		shiny:    l.loc("uShiny"),
		spec:     l.loc("uSpec"),
		diffuse:  l.loc("uDiffuse"),
		ambient:  l.loc("uAmbient"),
	}
}

func (u lightUniforms) set(dev gfx.Device, light lighting.Directional, m lighting.Material, eye math.Vec3) {
	dev.SetVec3(u.sunDir, light.Direction.Array())
	dev.SetVec3(u.sunColor, light.Color)
	dev.SetVec3(u.eyePos, eye.Array())
	dev.SetFloat(u.shiny, m.Shininess)
	dev.SetFloat(u.spec, m.Specular)
	dev.SetFloat(u.diffuse, m.Diffuse)
	dev.SetFloat(u.ambient, m.Ambient)
}

type creatureUniforms struct {
	transformUniforms
	lightUniforms

	time, wave, bounds, swimEnable int32
	longMask, latMask              int32
}

func newCreatureUniforms(l locator) creatureUniforms {
	return creatureUniforms{
		transformUniforms: newTransformUniforms(l),
		lightUniforms:     newLightUniforms(l),
		time:              l.loc("u_Time"),
		wave:              l.loc("u_Wave"),
		bounds:            l.loc("u_Bounds"),
		swimEnable:        l.loc("u_SwimEnable"),
		longMask:          l.loc("u_LongMask"),
		latMask:           l.loc("u_LatMask"),
	}
}

type boatUniforms struct {
	transformUniforms
	lightUniforms

	sampler int32
}

func newBoatUniforms(l locator) boatUniforms {
	return boatUniforms{
		transformUniforms: newTransformUniforms(l),
		lightUniforms:     newLightUniforms(l),
		sampler:           l.loc("u_Sampler"),
	}
}

type waterUniforms struct {
	transformUniforms
	lightUniforms

	time          int32
	normalSampler int32
	reflectionTex int32
	reflectionVP  int32
	skybox        int32

	fresnelF0, planarWeight, distort, waveScale, shade int32
}

func newWaterUniforms(l locator) waterUniforms {
	return waterUniforms{
		transformUniforms: newTransformUniforms(l),
		lightUniforms:     newLightUniforms(l),
		time:              l.loc("time"),
		normalSampler:     l.loc("normalSampler"),
		reflectionTex:     l.loc("u_ReflectionTex"),
		reflectionVP:      l.loc("u_ReflectionVP"),
		skybox:            l.loc("u_Skybox"),
		fresnelF0:         l.loc("uFresnelF0"),
		planarWeight:      l.loc("uPlanarWeight"),
		distort:           l.loc("uDistort"),
		waveScale:         l.loc("uWaveScale"),
		shade:             l.loc("uShade"),
	}
}

type skyboxUniforms struct {
	view, projection, sampler int32
}

func newSkyboxUniforms(l locator) skyboxUniforms {
	return skyboxUniforms{
		view:       l.loc("u_View"),
		projection: l.loc("u_Projection"),
		sampler:    l.loc("u_Skybox"),
	}
}
