// Package gfx defines the graphics resource layer the scene renders through.
// The OpenGL implementation lives in package renderer; gfxtest provides a
// recording fake for tests.
package gfx

import (
	"errors"

	"github.com/Faultbox/nightreef/pkg/math"
)

// ErrFramebufferIncomplete is returned when an off-screen target cannot be
// completed by the driver.
var ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

// Handles are opaque, zero means "none".
type (
	ProgramID uint32
	BufferID  uint32
	TextureID uint32
	TargetID  uint32
)

// TextureKind selects the bind target of a texture.
type TextureKind int

const (
	Texture2D TextureKind = iota
	TextureCube
)

// CubeFace indexes the six faces of a cubemap in +X, -X, +Y, -Y, +Z, -Z order.
type CubeFace int

const (
	FacePosX CubeFace = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ

	FaceCount
)

// DepthFunc is the depth comparison used by subsequent draws.
type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLEqual
)

// Image is tightly packed RGBA8 pixel data, first row on top.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Solid returns a 1x1 image of a single color.
func Solid(c [4]uint8) Image {
	return Image{Width: 1, Height: 1, Pix: []byte{c[0], c[1], c[2], c[3]}}
}

// TextureOptions control sampling of a 2D texture.
type TextureOptions struct {
	Mipmaps bool
	Repeat  bool // otherwise clamp to edge
}

// Attrib is one float vertex attribute inside a buffer.
type Attrib struct {
	Location uint32
	Size     int32 // components
	Stride   int32 // bytes, 0 for tightly packed
	Offset   int   // bytes
}

// Layout lists the attributes a draw reads.
type Layout []Attrib

// Device is the set of GPU operations the scene needs. Uniform setters
// ignore location -1.
type Device interface {
	CompileProgram(name, vertexSrc, fragmentSrc string) (ProgramID, error)
	UniformLocation(p ProgramID, name string) int32
	UseProgram(p ProgramID)

	SetMat4(loc int32, m math.Mat4)
	SetVec2(loc int32, x, y float32)
	SetVec3(loc int32, v [3]float32)
	SetVec4(loc int32, v [4]float32)
	SetFloat(loc int32, v float32)
	SetInt(loc int32, v int32)

	UploadBuffer(data []float32) (BufferID, error)
	Draw(buf BufferID, layout Layout, first, count int32)

	CreateTexture2D(img Image, opts TextureOptions) (TextureID, error)
	UpdateTexture2D(tex TextureID, img Image, opts TextureOptions) error
	CreateCubemap() (TextureID, error)
	UpdateCubemapFace(tex TextureID, face CubeFace, img Image) error
	GenerateMipmaps(kind TextureKind, tex TextureID)
	BindTexture(unit uint32, kind TextureKind, tex TextureID)

	CreateRenderTarget(width, height int32) (TargetID, TextureID, error)
	ResizeRenderTarget(id TargetID, width, height int32)
	BindRenderTarget(id TargetID)
	BindDefault(width, height int32)

	Clear(r, g, b, a float32)
	SetDepth(fn DepthFunc, write bool)
	ReadPixels(width, height int32) []byte

	Destroy()
}
