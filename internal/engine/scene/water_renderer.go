package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/lighting"
	"github.com/Faultbox/nightreef/internal/engine/scene/shaders"
	"github.com/Faultbox/nightreef/internal/engine/water"
	"github.com/Faultbox/nightreef/pkg/math"
)

var waterLayout = gfx.Layout{
	{Location: 0, Size: 3, Stride: water.Stride},
	{Location: 2, Size: 2, Stride: water.Stride, Offset: 3 * 4},
}

// WaterRenderer handles the ocean plane.
type WaterRenderer struct {
	dev  gfx.Device
	prog program
	u    waterUniforms

	plane     *water.Plane
	buf       gfx.BufferID
	normalMap gfx.TextureID
}

// NewWaterRenderer links the water program, uploads the plane and a flat
// normal placeholder. Sampler units and the fixed shading constants are
// set once here.
func NewWaterRenderer(dev gfx.Device, log *zap.Logger) (*WaterRenderer, error) {
	wr := &WaterRenderer{dev: dev}
	wr.prog = link(dev, log, "water", shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if wr.prog.ok() {
		wr.u = newWaterUniforms(locator{dev: dev, log: log, p: wr.prog})
		dev.UseProgram(wr.prog.id)
		dev.SetInt(wr.u.normalSampler, unitMain)
		dev.SetInt(wr.u.reflectionTex, unitReflection)
		dev.SetInt(wr.u.skybox, unitSkybox)
		dev.SetFloat(wr.u.fresnelF0, water.FresnelF0)
		dev.SetFloat(wr.u.planarWeight, water.PlanarWeight)
		dev.SetFloat(wr.u.distort, water.DistortStrength)
		dev.SetFloat(wr.u.waveScale, water.WaveScale)
		dev.SetVec2(wr.u.shade, water.DeepShade, water.ShallowShade)
	}

	wr.plane = water.BuildPlane(water.DefaultHalfSize, 0, water.DefaultUVScale)
	buf, err := dev.UploadBuffer(wr.plane.Vertices)
	if err != nil {
		return wr, fmt.Errorf("water plane: %w", err)
	}
	wr.buf = buf

	tex, err := dev.CreateTexture2D(gfx.Solid(water.NormalPlaceholder), gfx.TextureOptions{Repeat: true})
	if err != nil {
		return wr, fmt.Errorf("water normal map: %w", err)
	}
	wr.normalMap = tex
	return wr, nil
}

// SetNormalMap replaces the placeholder with a decoded normal map.
func (wr *WaterRenderer) SetNormalMap(img gfx.Image) error {
	if wr.normalMap == 0 {
		return fmt.Errorf("water normal map: no texture")
	}
	return wr.dev.UpdateTexture2D(wr.normalMap, img, gfx.TextureOptions{Mipmaps: true, Repeat: true})
}

func (wr *WaterRenderer) ready() bool {
	return wr.prog.ok() && wr.buf != 0 && wr.normalMap != 0
}

// Render draws the plane with the unreflected camera. reflection and sky
// may be zero, the shader then samples whatever is bound.
func (wr *WaterRenderer) Render(st *RenderState, light lighting.Directional, reflection, sky gfx.TextureID) {
	if !wr.ready() {
		return
	}
	dev := wr.dev
	dev.UseProgram(wr.prog.id)
	wr.u.transformUniforms.set(dev, math.Identity(), st.ViewProj())
	wr.u.lightUniforms.set(dev, light, lighting.Water, st.Eye)
	dev.SetFloat(wr.u.time, st.Clock.Elapsed)
	dev.SetMat4(wr.u.reflectionVP, st.ReflectVP)

	dev.BindTexture(unitMain, gfx.Texture2D, wr.normalMap)
	if reflection != 0 {
		dev.BindTexture(unitReflection, gfx.Texture2D, reflection)
	}
	if sky != 0 {
		dev.BindTexture(unitSkybox, gfx.TextureCube, sky)
	}
	dev.Draw(wr.buf, waterLayout, 0, wr.plane.VertexCount())
}
