package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/nightreef/internal/engine/framebuffer"
	"github.com/Faultbox/nightreef/internal/engine/gfx"
)

var cubeTargets = [gfx.FaceCount]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

func checkImage(img gfx.Image) error {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height*4 {
		return fmt.Errorf("invalid image %dx%d with %d bytes", img.Width, img.Height, len(img.Pix))
	}
	return nil
}

func (r *Renderer) CreateTexture2D(img gfx.Image, opts gfx.TextureOptions) (gfx.TextureID, error) {
	if err := checkImage(img); err != nil {
		return 0, fmt.Errorf("create texture: %w", err)
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	r.textures = append(r.textures, tex)
	if err := r.UpdateTexture2D(gfx.TextureID(tex), img, opts); err != nil {
		return 0, err
	}
	return gfx.TextureID(tex), nil
}

func (r *Renderer) UpdateTexture2D(tex gfx.TextureID, img gfx.Image, opts gfx.TextureOptions) error {
	if err := checkImage(img); err != nil {
		return fmt.Errorf("update texture %d: %w", tex, err)
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	return nil
}

// CreateCubemap allocates a cubemap whose faces are 1x1 black until
// replaced.
func (r *Renderer) CreateCubemap() (gfx.TextureID, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	r.textures = append(r.textures, tex)

	black := gfx.Solid([4]uint8{0, 0, 0, 255})
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for _, target := range cubeTargets {
		gl.TexImage2D(target, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(black.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return gfx.TextureID(tex), nil
}

func (r *Renderer) UpdateCubemapFace(tex gfx.TextureID, face gfx.CubeFace, img gfx.Image) error {
	if face < 0 || face >= gfx.FaceCount {
		return fmt.Errorf("cubemap face %d out of range", face)
	}
	if err := checkImage(img); err != nil {
		return fmt.Errorf("cubemap face %d: %w", face, err)
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, uint32(tex))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(cubeTargets[face], 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return nil
}

func (r *Renderer) GenerateMipmaps(kind gfx.TextureKind, tex gfx.TextureID) {
	target := uint32(gl.TEXTURE_2D)
	if kind == gfx.TextureCube {
		target = gl.TEXTURE_CUBE_MAP
	}
	gl.BindTexture(target, uint32(tex))
	gl.GenerateMipmap(target)
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
}

func (r *Renderer) BindTexture(unit uint32, kind gfx.TextureKind, tex gfx.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if kind == gfx.TextureCube {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, uint32(tex))
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (r *Renderer) CreateRenderTarget(width, height int32) (gfx.TargetID, gfx.TextureID, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return 0, 0, err
	}
	r.nextRT++
	r.targets[r.nextRT] = fb
	return r.nextRT, gfx.TextureID(fb.ColorTexture()), nil
}

func (r *Renderer) ResizeRenderTarget(id gfx.TargetID, width, height int32) {
	if fb, ok := r.targets[id]; ok {
		fb.Resize(width, height)
	}
}

func (r *Renderer) BindRenderTarget(id gfx.TargetID) {
	if fb, ok := r.targets[id]; ok {
		fb.Bind()
	}
}

func (r *Renderer) BindDefault(width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
}
