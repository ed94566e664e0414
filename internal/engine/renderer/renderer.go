// Package renderer implements gfx.Device on OpenGL 4.1 core.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/engine/framebuffer"
	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/shader"
	"github.com/Faultbox/nightreef/internal/logger"
	"github.com/Faultbox/nightreef/pkg/math"
)

// maxAttribs is the number of vertex attribute slots the scene uses.
const maxAttribs = 3

// Renderer issues GL calls for the scene. It must be created and used on
// the thread that owns the GL context.
type Renderer struct {
	log *zap.Logger

	vao      uint32
	programs []uint32
	buffers  []uint32
	textures []uint32
	targets  map[gfx.TargetID]*framebuffer.Framebuffer
	nextRT   gfx.TargetID
}

var _ gfx.Device = (*Renderer)(nil)

// New initializes GL function pointers and default state.
// IMPORTANT: Must be called AFTER the OpenGL context is created.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		log:     logger.Named("renderer"),
		targets: make(map[gfx.TargetID]*framebuffer.Framebuffer),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	// Core profile requires a bound VAO for every draw.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	return r, nil
}

// Destroy releases every GL object created through the renderer.
func (r *Renderer) Destroy() {
	r.log.Info("closing renderer")
	for _, t := range r.targets {
		t.Destroy()
	}
	r.targets = nil
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if len(r.buffers) > 0 {
		gl.DeleteBuffers(int32(len(r.buffers)), &r.buffers[0])
		r.buffers = nil
	}
	for _, p := range r.programs {
		gl.DeleteProgram(p)
	}
	r.programs = nil
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func (r *Renderer) CompileProgram(name, vertexSrc, fragmentSrc string) (gfx.ProgramID, error) {
	program, err := shader.Link(name, vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	r.programs = append(r.programs, program)
	r.log.Debug("shader program created", zap.String("name", name), zap.Uint32("program", program))
	return gfx.ProgramID(program), nil
}

func (r *Renderer) UniformLocation(p gfx.ProgramID, name string) int32 {
	return shader.UniformLocation(uint32(p), name)
}

func (r *Renderer) UseProgram(p gfx.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (r *Renderer) SetMat4(loc int32, m math.Mat4) {
	if loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

func (r *Renderer) SetVec2(loc int32, x, y float32) {
	if loc >= 0 {
		gl.Uniform2f(loc, x, y)
	}
}

func (r *Renderer) SetVec3(loc int32, v [3]float32) {
	if loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (r *Renderer) SetVec4(loc int32, v [4]float32) {
	if loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (r *Renderer) SetFloat(loc int32, v float32) {
	if loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (r *Renderer) SetInt(loc int32, v int32) {
	if loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (r *Renderer) UploadBuffer(data []float32) (gfx.BufferID, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("upload: empty buffer")
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.buffers = append(r.buffers, vbo)
	return gfx.BufferID(vbo), nil
}

func (r *Renderer) Draw(buf gfx.BufferID, layout gfx.Layout, first, count int32) {
	if count <= 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))

	var used [maxAttribs]bool
	for _, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, a.Stride, uintptr(a.Offset))
		gl.EnableVertexAttribArray(a.Location)
		if a.Location < maxAttribs {
			used[a.Location] = true
		}
	}
	for loc, on := range used {
		if !on {
			gl.DisableVertexAttribArray(uint32(loc))
		}
	}

	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (r *Renderer) Clear(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) SetDepth(fn gfx.DepthFunc, write bool) {
	switch fn {
	case gfx.DepthLEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}
	gl.DepthMask(write)
}

// ReadPixels reads the default framebuffer, bottom row first.
func (r *Renderer) ReadPixels(width, height int32) []byte {
	pixels := make([]byte, int(width)*int(height)*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
