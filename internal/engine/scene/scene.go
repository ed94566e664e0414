// Package scene renders the night ocean: a mirrored reflection pass, the
// skybox, the water plane and the opaque boat and creatures.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/lighting"
	"github.com/Faultbox/nightreef/internal/engine/mesh"
	"github.com/Faultbox/nightreef/internal/logger"
)

// ImageSource decodes images off the render thread.
type ImageSource interface {
	DecodeAsync(name string, flipY bool) *gfx.PendingImage
}

// Config contains scene configuration options.
type Config struct {
	Width  int32
	Height int32
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{Width: 1280, Height: 720}
}

// textureSlot is a destination for a decoded image.
type textureSlot struct {
	flipY bool
	apply func(gfx.Image) error
}

type pendingUpload struct {
	img  *gfx.PendingImage
	slot textureSlot
}

// Scene owns the GPU side of the frame. All methods must be called on the
// thread that owns the device.
type Scene struct {
	config Config
	dev    gfx.Device
	log    *zap.Logger

	Light lighting.Directional

	creatures *CreatureRenderer
	boat      *BoatRenderer
	water     *WaterRenderer
	skybox    *SkyboxRenderer

	// Reflection target, zero when it could not be created.
	reflTarget gfx.TargetID
	reflColor  gfx.TextureID

	slots   map[string][]textureSlot
	pending []pendingUpload
}

// New creates the passes. A pass whose program or resources fail is logged
// and skipped every frame; New itself only fails without a device.
func New(dev gfx.Device, cfg Config) (*Scene, error) {
	if dev == nil {
		return nil, fmt.Errorf("scene: no graphics device")
	}
	s := &Scene{
		config: cfg,
		dev:    dev,
		log:    logger.Named("scene"),
		Light:  lighting.Moon(),
		slots:  make(map[string][]textureSlot),
	}

	s.creatures = NewCreatureRenderer(dev, s.log)
	s.boat = NewBoatRenderer(dev, s.log)

	var err error
	if s.water, err = NewWaterRenderer(dev, s.log); err != nil {
		s.log.Error("water pass disabled", zap.Error(err))
	}
	if s.skybox, err = NewSkyboxRenderer(dev, s.log); err != nil {
		s.log.Error("skybox pass disabled", zap.Error(err))
	}

	s.reflTarget, s.reflColor, err = dev.CreateRenderTarget(cfg.Width, cfg.Height)
	if err != nil {
		s.log.Error("reflection pass disabled", zap.Error(err))
		s.reflTarget, s.reflColor = 0, 0
	}
	return s, nil
}

// LoadCreatures uploads the creature meshes.
func (s *Scene) LoadCreatures(meshes map[actor.Kind]mesh.Batch) error {
	return s.creatures.Load(meshes)
}

// LoadBoat uploads the boat batches and starts decoding their textures.
func (s *Scene) LoadBoat(batches []mesh.Batch, materials map[string]string, images ImageSource) error {
	sources, err := s.boat.Load(batches, materials)
	if err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, src := range sources {
		if seen[src.Path] {
			continue
		}
		seen[src.Path] = true
		path := src.Path
		s.bind(images, path, textureSlot{flipY: true, apply: func(img gfx.Image) error {
			return s.boat.SetTexture(path, img)
		}})
	}
	return nil
}

// LoadWaterNormals starts decoding the water normal map.
func (s *Scene) LoadWaterNormals(images ImageSource, name string) {
	if s.water == nil {
		return
	}
	s.bind(images, name, textureSlot{flipY: true, apply: s.water.SetNormalMap})
}

// LoadSkybox starts decoding the six faces in +X, -X, +Y, -Y, +Z, -Z order.
func (s *Scene) LoadSkybox(images ImageSource, faces [gfx.FaceCount]string) {
	if s.skybox == nil {
		return
	}
	for i, name := range faces {
		face := gfx.CubeFace(i)
		s.bind(images, name, textureSlot{apply: func(img gfx.Image) error {
			return s.skybox.SetFace(face, img)
		}})
	}
}

func (s *Scene) bind(images ImageSource, name string, slot textureSlot) {
	s.slots[name] = append(s.slots[name], slot)
	s.pending = append(s.pending, pendingUpload{img: images.DecodeAsync(name, slot.flipY), slot: slot})
}

// Reload decodes a changed texture again. It returns false for names the
// scene does not use.
func (s *Scene) Reload(images ImageSource, name string) bool {
	slots, ok := s.slots[name]
	if !ok {
		return false
	}
	for _, slot := range slots {
		s.pending = append(s.pending, pendingUpload{img: images.DecodeAsync(name, slot.flipY), slot: slot})
	}
	return true
}

// PollTextures uploads every decode that has finished. Failed decodes keep
// the placeholder. Returns the number of uploads still outstanding.
func (s *Scene) PollTextures() int {
	kept := s.pending[:0]
	for _, p := range s.pending {
		img, err, done := p.img.Poll()
		if !done {
			kept = append(kept, p)
			continue
		}
		if err == nil {
			err = p.slot.apply(img)
		}
		if err != nil {
			s.log.Warn("texture unavailable", zap.String("name", p.img.Name), zap.Error(err))
			continue
		}
		s.log.Debug("texture uploaded", zap.String("name", p.img.Name),
			zap.Int("width", img.Width), zap.Int("height", img.Height))
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = pendingUpload{}
	}
	s.pending = kept
	return len(s.pending)
}

// Resize follows the drawable size.
func (s *Scene) Resize(width, height int32) {
	if width == s.config.Width && height == s.config.Height {
		return
	}
	s.config.Width = width
	s.config.Height = height
	if s.reflTarget != 0 {
		s.dev.ResizeRenderTarget(s.reflTarget, width, height)
	}
}

// Size returns the current viewport size.
func (s *Scene) Size() (int32, int32) {
	return s.config.Width, s.config.Height
}

// Render draws one frame into the default framebuffer. st.Frame must have
// been called for this frame.
func (s *Scene) Render(st *RenderState) {
	s.renderReflection(st)

	s.dev.BindDefault(s.config.Width, s.config.Height)
	s.dev.SetDepth(gfx.DepthLess, true)
	s.dev.Clear(0, 0, 0, 1)

	var sky gfx.TextureID
	if s.skybox != nil {
		s.skybox.Render(st)
		sky = s.skybox.Texture()
	}
	if s.water != nil {
		s.water.Render(st, s.Light, s.reflColor, sky)
	}

	viewProj := st.ViewProj()
	s.creatures.Render(st, viewProj, st.Eye, s.Light)
	s.boat.Render(st, viewProj, st.Eye, s.Light)
}

// renderReflection draws the boat and creatures mirrored across y = 0 into
// the reflection target. It needs the boat; without it the pass is skipped.
func (s *Scene) renderReflection(st *RenderState) {
	if s.reflTarget == 0 || !s.boat.ready() {
		return
	}
	s.dev.BindRenderTarget(s.reflTarget)
	s.dev.SetDepth(gfx.DepthLess, true)
	s.dev.Clear(0, 0, 0, 1)

	s.boat.Render(st, st.ReflectVP, st.ReflectEye, s.Light)
	s.creatures.Render(st, st.ReflectVP, st.ReflectEye, s.Light)
}

// CaptureImage reads back the default framebuffer as top-down RGBA rows.
func (s *Scene) CaptureImage() ([]byte, int32, int32) {
	width, height := s.config.Width, s.config.Height
	pixels := s.dev.ReadPixels(width, height)

	// Flip vertically (OpenGL has origin at bottom-left, we need top-left)
	rowSize := int(width) * 4
	if width <= 0 || height <= 0 || len(pixels) < rowSize*int(height) {
		return nil, 0, 0
	}
	flipped := make([]byte, len(pixels))
	for y := 0; y < int(height); y++ {
		srcRow := (int(height) - 1 - y) * rowSize
		dstRow := y * rowSize
		copy(flipped[dstRow:dstRow+rowSize], pixels[srcRow:srcRow+rowSize])
	}
	return flipped, width, height
}
