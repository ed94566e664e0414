// Package objfile parses Wavefront OBJ meshes and MTL material libraries.
//
// The parser is lenient: unknown or malformed lines are skipped, and face
// tokens that omit texture or normal indices resolve to a default record
// instead of failing the parse.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaterial is the material assigned to faces before any usemtl.
const DefaultMaterial = "default"

// ErrNoFaces is returned when a mesh contains no usable faces.
var ErrNoFaces = errors.New("obj: no faces")

// Vertex is one corner of a triangle.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Triangle is a single face record tagged with its material.
type Triangle struct {
	Vertices [3]Vertex
	Material string
}

// Model is the ordered triangle list of a parsed mesh.
type Model struct {
	Triangles []Triangle

	// Counts of raw records, for diagnostics.
	Positions int
	TexCoords int
	Normals   int
	Skipped   int
}

// Default records referenced by index 0.
var (
	defaultPosition = [3]float32{0, 0, 0}
	defaultTexCoord = [2]float32{0, 0}
	defaultNormal   = [3]float32{0, 1, 0}
)

// Parse reads an OBJ mesh.
func Parse(r io.Reader) (*Model, error) {
	p := parser{
		positions: [][3]float32{defaultPosition},
		texcoords: [][2]float32{defaultTexCoord},
		normals:   [][3]float32{defaultNormal},
		material:  DefaultMaterial,
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line(strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	p.model.Positions = len(p.positions) - 1
	p.model.TexCoords = len(p.texcoords) - 1
	p.model.Normals = len(p.normals) - 1

	if len(p.model.Triangles) == 0 {
		return &p.model, ErrNoFaces
	}
	return &p.model, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Model, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	positions [][3]float32
	texcoords [][2]float32
	normals   [][3]float32
	material  string
	model     Model
}

type corner struct {
	v, vt, vn int
}

func (p *parser) line(line string) {
	if line == "" || line[0] == '#' {
		return
	}
	fields := strings.Fields(line)

	switch fields[0] {
	case "v":
		if v, ok := parseVec3(fields[1:]); ok {
			p.positions = append(p.positions, v)
		} else {
			p.model.Skipped++
		}
	case "vt":
		if len(fields) < 3 {
			p.model.Skipped++
			return
		}
		u, err1 := strconv.ParseFloat(fields[1], 32)
		v, err2 := strconv.ParseFloat(fields[2], 32)
		if err1 != nil || err2 != nil {
			p.model.Skipped++
			return
		}
		p.texcoords = append(p.texcoords, [2]float32{float32(u), float32(v)})
	case "vn":
		if n, ok := parseVec3(fields[1:]); ok {
			p.normals = append(p.normals, n)
		} else {
			p.model.Skipped++
		}
	case "usemtl":
		if name := strings.TrimSpace(strings.TrimPrefix(line, "usemtl")); name != "" {
			p.material = name
		}
	case "f":
		p.face(fields[1:])
	}
}

func (p *parser) face(tokens []string) {
	if len(tokens) < 3 {
		p.model.Skipped++
		return
	}

	corners := make([]corner, 0, len(tokens))
	for _, tok := range tokens {
		c, ok := parseCorner(tok)
		if !ok || c.v <= 0 || c.v >= len(p.positions) {
			p.model.Skipped++
			return
		}
		corners = append(corners, c)
	}

	// Fan triangulation anchored at the first corner.
	for i := 2; i < len(corners); i++ {
		tri := Triangle{Material: p.material}
		for j, c := range [3]corner{corners[0], corners[i-1], corners[i]} {
			tri.Vertices[j] = p.resolve(c)
		}
		p.model.Triangles = append(p.model.Triangles, tri)
	}
}

func (p *parser) resolve(c corner) Vertex {
	v := Vertex{
		Position: p.positions[c.v],
		TexCoord: p.texcoords[0],
		Normal:   p.normals[0],
	}
	if c.vt > 0 && c.vt < len(p.texcoords) {
		v.TexCoord = p.texcoords[c.vt]
	}
	if c.vn > 0 && c.vn < len(p.normals) {
		v.Normal = p.normals[c.vn]
	}
	return v
}

// parseCorner accepts v, v/vt, v/vt/vn and v//vn tokens.
func parseCorner(tok string) (corner, bool) {
	parts := strings.Split(tok, "/")
	var c corner

	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return c, false
	}
	c.v = v

	if len(parts) > 1 && parts[1] != "" {
		if vt, err := strconv.Atoi(parts[1]); err == nil {
			c.vt = vt
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if vn, err := strconv.Atoi(parts[2]); err == nil {
			c.vn = vn
		}
	}
	return c, true
}

func parseVec3(fields []string) ([3]float32, bool) {
	var out [3]float32
	if len(fields) < 3 {
		return out, false
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, false
		}
		out[i] = float32(f)
	}
	return out, true
}
