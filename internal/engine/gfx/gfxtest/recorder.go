// Package gfxtest provides a recording gfx.Device for tests.
package gfxtest

import (
	"fmt"
	"sync"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/pkg/math"
)

// Call is one recorded device operation.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Draw is a recorded draw with the state it was issued under.
type Draw struct {
	Program  gfx.ProgramID
	Target   gfx.TargetID // 0 for the default framebuffer
	Buffer   gfx.BufferID
	First    int32
	Count    int32
	Depth    gfx.DepthFunc
	DepthW   bool
	Textures map[uint32]gfx.TextureID
}

// Recorder implements gfx.Device without a GPU.
type Recorder struct {
	mu sync.Mutex

	// FailPrograms makes CompileProgram fail for the named programs.
	FailPrograms map[string]bool
	// MissingUniforms makes UniformLocation return -1 for these names.
	MissingUniforms map[string]bool
	// FailTargets makes CreateRenderTarget fail.
	FailTargets bool

	Calls    []Call
	Draws    []Draw
	Programs map[gfx.ProgramID]string
	Buffers  map[gfx.BufferID][]float32
	Textures map[gfx.TextureID]gfx.Image
	Cubes    map[gfx.TextureID][gfx.FaceCount]gfx.Image
	Targets  map[gfx.TargetID][2]int32
	Uniforms map[string]any // "program.uniform" -> last value
	Mipmaps  map[gfx.TextureID]int

	next      uint32
	program   gfx.ProgramID
	target    gfx.TargetID
	depth     gfx.DepthFunc
	depthW    bool
	bound     map[uint32]gfx.TextureID
	locations map[int32]string
	destroyed bool
}

var _ gfx.Device = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		FailPrograms:    map[string]bool{},
		MissingUniforms: map[string]bool{},
		Programs:        map[gfx.ProgramID]string{},
		Buffers:         map[gfx.BufferID][]float32{},
		Textures:        map[gfx.TextureID]gfx.Image{},
		Cubes:           map[gfx.TextureID][gfx.FaceCount]gfx.Image{},
		Targets:         map[gfx.TargetID][2]int32{},
		Uniforms:        map[string]any{},
		Mipmaps:         map[gfx.TextureID]int{},
		bound:           map[uint32]gfx.TextureID{},
		locations:       map[int32]string{},
		depthW:          true,
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls and draws but keeps resources.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = nil
	r.Draws = nil
}

// ProgramByName returns the id of a compiled program.
func (r *Recorder) ProgramByName(name string) (gfx.ProgramID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.Programs {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// Uniform returns the last value set for program.uniform.
func (r *Recorder) Uniform(program, name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.Uniforms[program+"."+name]
	return v, ok
}

// Destroyed reports whether Destroy was called.
func (r *Recorder) Destroyed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.destroyed
}

func (r *Recorder) CompileProgram(name, vertexSrc, fragmentSrc string) (gfx.ProgramID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CompileProgram", name)
	if r.FailPrograms[name] {
		return 0, fmt.Errorf("link %s: forced failure", name)
	}
	if vertexSrc == "" || fragmentSrc == "" {
		return 0, fmt.Errorf("link %s: empty source", name)
	}
	id := gfx.ProgramID(r.id())
	r.Programs[id] = name
	return id, nil
}

func (r *Recorder) UniformLocation(p gfx.ProgramID, name string) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MissingUniforms[name] {
		return -1
	}
	loc := int32(r.id())
	r.locations[loc] = r.Programs[p] + "." + name
	return loc
}

func (r *Recorder) UseProgram(p gfx.ProgramID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("UseProgram", r.Programs[p])
	r.program = p
}

func (r *Recorder) set(loc int32, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if loc < 0 {
		return
	}
	if key, ok := r.locations[loc]; ok {
		r.Uniforms[key] = v
	}
}

func (r *Recorder) SetMat4(loc int32, m math.Mat4) { r.set(loc, m) }
func (r *Recorder) SetVec2(loc int32, x, y float32) { r.set(loc, [2]float32{x, y}) }
func (r *Recorder) SetVec3(loc int32, v [3]float32) { r.set(loc, v) }
func (r *Recorder) SetVec4(loc int32, v [4]float32) { r.set(loc, v) }
func (r *Recorder) SetFloat(loc int32, v float32) { r.set(loc, v) }
func (r *Recorder) SetInt(loc int32, v int32) { r.set(loc, v) }

func (r *Recorder) UploadBuffer(data []float32) (gfx.BufferID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(data) == 0 {
		return 0, fmt.Errorf("upload: empty buffer")
	}
	id := gfx.BufferID(r.id())
	r.Buffers[id] = append([]float32(nil), data...)
	r.record("UploadBuffer", len(data))
	return id, nil
}

func (r *Recorder) Draw(buf gfx.BufferID, layout gfx.Layout, first, count int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	textures := make(map[uint32]gfx.TextureID, len(r.bound))
	for u, t := range r.bound {
		textures[u] = t
	}
	r.Draws = append(r.Draws, Draw{
		Program:  r.program,
		Target:   r.target,
		Buffer:   buf,
		First:    first,
		Count:    count,
		Depth:    r.depth,
		DepthW:   r.depthW,
		Textures: textures,
	})
	r.record("Draw", r.Programs[r.program], first, count)
}

func (r *Recorder) CreateTexture2D(img gfx.Image, opts gfx.TextureOptions) (gfx.TextureID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := gfx.TextureID(r.id())
	r.Textures[id] = img
	if opts.Mipmaps {
		r.Mipmaps[id]++
	}
	r.record("CreateTexture2D", img.Width, img.Height)
	return id, nil
}

func (r *Recorder) UpdateTexture2D(tex gfx.TextureID, img gfx.Image, opts gfx.TextureOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Textures[tex]; !ok {
		return fmt.Errorf("update texture %d: unknown", tex)
	}
	r.Textures[tex] = img
	if opts.Mipmaps {
		r.Mipmaps[tex]++
	}
	r.record("UpdateTexture2D", uint32(tex), img.Width, img.Height)
	return nil
}

func (r *Recorder) CreateCubemap() (gfx.TextureID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := gfx.TextureID(r.id())
	var faces [gfx.FaceCount]gfx.Image
	for i := range faces {
		faces[i] = gfx.Solid([4]uint8{0, 0, 0, 255})
	}
	r.Cubes[id] = faces
	r.record("CreateCubemap")
	return id, nil
}

func (r *Recorder) UpdateCubemapFace(tex gfx.TextureID, face gfx.CubeFace, img gfx.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	faces, ok := r.Cubes[tex]
	if !ok || face < 0 || face >= gfx.FaceCount {
		return fmt.Errorf("update cubemap %d face %d: unknown", tex, face)
	}
	faces[face] = img
	r.Cubes[tex] = faces
	r.record("UpdateCubemapFace", int(face))
	return nil
}

func (r *Recorder) GenerateMipmaps(kind gfx.TextureKind, tex gfx.TextureID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Mipmaps[tex]++
	r.record("GenerateMipmaps", int(kind), uint32(tex))
}

func (r *Recorder) BindTexture(unit uint32, kind gfx.TextureKind, tex gfx.TextureID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bound[unit] = tex
	r.record("BindTexture", unit, int(kind), uint32(tex))
}

func (r *Recorder) CreateRenderTarget(width, height int32) (gfx.TargetID, gfx.TextureID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailTargets {
		return 0, 0, fmt.Errorf("render target: %w", gfx.ErrFramebufferIncomplete)
	}
	id := gfx.TargetID(r.id())
	color := gfx.TextureID(r.id())
	r.Targets[id] = [2]int32{width, height}
	r.Textures[color] = gfx.Image{Width: int(width), Height: int(height)}
	r.record("CreateRenderTarget", width, height)
	return id, color, nil
}

func (r *Recorder) ResizeRenderTarget(id gfx.TargetID, width, height int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Targets[id]; ok {
		r.Targets[id] = [2]int32{width, height}
	}
	r.record("ResizeRenderTarget", width, height)
}

func (r *Recorder) BindRenderTarget(id gfx.TargetID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = id
	r.record("BindRenderTarget", uint32(id))
}

func (r *Recorder) BindDefault(width, height int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = 0
	r.record("BindDefault", width, height)
}

func (r *Recorder) Clear(red, green, blue, alpha float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Clear", red, green, blue, alpha)
}

func (r *Recorder) SetDepth(fn gfx.DepthFunc, write bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.depth = fn
	r.depthW = write
	r.record("SetDepth", int(fn), write)
}

func (r *Recorder) ReadPixels(width, height int32) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ReadPixels", width, height)
	return make([]byte, int(width)*int(height)*4)
}

func (r *Recorder) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = true
	r.record("Destroy")
}
