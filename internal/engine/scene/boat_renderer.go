package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/lighting"
	"github.com/Faultbox/nightreef/internal/engine/mesh"
	"github.com/Faultbox/nightreef/internal/engine/scene/shaders"
	"github.com/Faultbox/nightreef/pkg/math"
)

var boatLayout = gfx.Layout{
	{Location: 0, Size: 3, Stride: mesh.InterleavedStride},
	{Location: 1, Size: 3, Stride: mesh.InterleavedStride, Offset: 3 * mesh.FloatSize},
	{Location: 2, Size: 2, Stride: mesh.InterleavedStride, Offset: 6 * mesh.FloatSize},
}

// boatTextureOptions match how material textures are sampled on the hull.
var boatTextureOptions = gfx.TextureOptions{Mipmaps: true, Repeat: true}

type boatPart struct {
	material string
	buf      gfx.BufferID
	count    int32
	tex      gfx.TextureID
	source   mesh.TextureSource
}

// BoatRenderer draws the boat, one draw per material.
type BoatRenderer struct {
	dev   gfx.Device
	log   *zap.Logger
	prog  program
	u     boatUniforms
	parts []boatPart
}

// NewBoatRenderer links the boat program.
func NewBoatRenderer(dev gfx.Device, log *zap.Logger) *BoatRenderer {
	br := &BoatRenderer{dev: dev, log: log}
	br.prog = link(dev, log, "boat", shaders.BoatVertexShader, shaders.BoatFragmentShader)
	if br.prog.ok() {
		br.u = newBoatUniforms(locator{dev: dev, log: log, p: br.prog})
		dev.UseProgram(br.prog.id)
		dev.SetInt(br.u.sampler, unitMain)
	}
	return br
}

// Load uploads one buffer per batch. Materials with a texture file start
// on a gray placeholder; the returned sources list those files so the
// caller can decode them.
func (br *BoatRenderer) Load(batches []mesh.Batch, materials map[string]string) ([]mesh.TextureSource, error) {
	var pending []mesh.TextureSource
	for i := range batches {
		b := &batches[i]
		if b.VertexCount() == 0 {
			continue
		}
		buf, err := br.dev.UploadBuffer(mesh.Interleave(b))
		if err != nil {
			return nil, fmt.Errorf("boat material %s: %w", b.Material, err)
		}

		src := mesh.ResolveTexture(b.Material, materials)
		fill := src.Solid
		if !src.IsSolid() {
			fill = mesh.SolidGray
			pending = append(pending, src)
		}
		tex, err := br.dev.CreateTexture2D(gfx.Solid(fill), gfx.TextureOptions{Repeat: true})
		if err != nil {
			return nil, fmt.Errorf("boat material %s: %w", b.Material, err)
		}

		br.parts = append(br.parts, boatPart{
			material: b.Material,
			buf:      buf,
			count:    int32(b.VertexCount()),
			tex:      tex,
			source:   src,
		})
	}
	return pending, nil
}

// SetTexture uploads a decoded image for every part using path.
func (br *BoatRenderer) SetTexture(path string, img gfx.Image) error {
	for _, p := range br.parts {
		if p.source.IsSolid() || p.source.Path != path {
			continue
		}
		if err := br.dev.UpdateTexture2D(p.tex, img, boatTextureOptions); err != nil {
			return fmt.Errorf("boat texture %s: %w", path, err)
		}
	}
	return nil
}

func (br *BoatRenderer) ready() bool {
	return br.prog.ok() && len(br.parts) > 0
}

// Render draws every part with the boat's current model matrix.
func (br *BoatRenderer) Render(st *RenderState, viewProj math.Mat4, eye math.Vec3, light lighting.Directional) {
	if !br.ready() {
		return
	}
	dev := br.dev
	dev.UseProgram(br.prog.id)
	br.u.lightUniforms.set(dev, light, lighting.Boat, eye)
	br.u.transformUniforms.set(dev, st.Model(actor.Boat), viewProj)

	for _, p := range br.parts {
		dev.BindTexture(unitMain, gfx.Texture2D, p.tex)
		dev.Draw(p.buf, boatLayout, 0, p.count)
	}
}
