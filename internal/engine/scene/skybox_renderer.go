package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/scene/shaders"
)

// skyboxVertices is a unit cube, two triangles per face.
var skyboxVertices = []float32{
	// +X
	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, -1, -1, 1, 1, 1, 1, 1, -1,
	// -X
	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, -1, 1, -1, 1, -1, -1, 1, 1,
	// +Y
	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	-1, 1, -1, 1, 1, 1, -1, 1, 1,
	// -Y
	-1, -1, 1, 1, -1, 1, 1, -1, -1,
	-1, -1, 1, 1, -1, -1, -1, -1, -1,
	// +Z
	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	-1, -1, 1, 1, 1, 1, 1, -1, 1,
	// -Z
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	-1, -1, -1, -1, 1, -1, 1, 1, -1,
}

var skyboxLayout = gfx.Layout{{Location: 0, Size: 3}}

// SkyboxRenderer draws the environment cube behind everything else.
type SkyboxRenderer struct {
	dev  gfx.Device
	prog program
	u    skyboxUniforms

	buf    gfx.BufferID
	cube   gfx.TextureID
	loaded [gfx.FaceCount]bool
}

// NewSkyboxRenderer links the program and creates a black cubemap.
func NewSkyboxRenderer(dev gfx.Device, log *zap.Logger) (*SkyboxRenderer, error) {
	sr := &SkyboxRenderer{dev: dev}
	sr.prog = link(dev, log, "skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if sr.prog.ok() {
		sr.u = newSkyboxUniforms(locator{dev: dev, log: log, p: sr.prog})
		dev.UseProgram(sr.prog.id)
		dev.SetInt(sr.u.sampler, unitMain)
	}

	buf, err := dev.UploadBuffer(skyboxVertices)
	if err != nil {
		return sr, fmt.Errorf("skybox cube: %w", err)
	}
	sr.buf = buf

	cube, err := dev.CreateCubemap()
	if err != nil {
		return sr, fmt.Errorf("skybox cubemap: %w", err)
	}
	sr.cube = cube
	return sr, nil
}

// SetFace uploads one face. Mipmaps are generated once all six faces have
// arrived, and again on every later face update.
func (sr *SkyboxRenderer) SetFace(face gfx.CubeFace, img gfx.Image) error {
	if sr.cube == 0 {
		return fmt.Errorf("skybox: no cubemap")
	}
	if err := sr.dev.UpdateCubemapFace(sr.cube, face, img); err != nil {
		return err
	}
	sr.loaded[face] = true
	if sr.Complete() {
		sr.dev.GenerateMipmaps(gfx.TextureCube, sr.cube)
	}
	return nil
}

// Complete reports whether every face has been uploaded.
func (sr *SkyboxRenderer) Complete() bool {
	for _, ok := range sr.loaded {
		if !ok {
			return false
		}
	}
	return true
}

// Texture returns the cubemap, zero if it could not be created.
func (sr *SkyboxRenderer) Texture() gfx.TextureID {
	return sr.cube
}

func (sr *SkyboxRenderer) ready() bool {
	return sr.prog.ok() && sr.buf != 0 && sr.cube != 0
}

// Render draws the cube with the view's translation removed, at the far
// plane with depth writes off.
func (sr *SkyboxRenderer) Render(st *RenderState) {
	if !sr.ready() {
		return
	}
	dev := sr.dev
	dev.SetDepth(gfx.DepthLEqual, false)
	dev.UseProgram(sr.prog.id)
	dev.SetMat4(sr.u.view, st.View.WithoutTranslation())
	dev.SetMat4(sr.u.projection, st.Proj)
	dev.BindTexture(unitMain, gfx.TextureCube, sr.cube)
	dev.Draw(sr.buf, skyboxLayout, 0, int32(len(skyboxVertices)/3))
	dev.SetDepth(gfx.DepthLess, true)
}
