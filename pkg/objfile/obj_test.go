package objfile

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_SingleTriangle(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
vn 0 0 -1
vn 1 0 0
f 1/1/1 2/2/2 3/3/3
`
	m, err := ParseString(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(m.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(m.Triangles))
	}

	tri := m.Triangles[0]
	wantPos := [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	wantUV := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}
	wantN := [3][3]float32{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}}
	for i, v := range tri.Vertices {
		if v.Position != wantPos[i] {
			t.Errorf("vertex %d position: got %v, want %v", i, v.Position, wantPos[i])
		}
		if v.TexCoord != wantUV[i] {
			t.Errorf("vertex %d uv: got %v, want %v", i, v.TexCoord, wantUV[i])
		}
		if v.Normal != wantN[i] {
			t.Errorf("vertex %d normal: got %v, want %v", i, v.Normal, wantN[i])
		}
	}
	if tri.Material != DefaultMaterial {
		t.Errorf("expected material %q, got %q", DefaultMaterial, tri.Material)
	}
}

func TestParse_FanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v -1 1 0
f 1 2 3 4 5
`
	m, err := ParseString(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(m.Triangles) != 3 {
		t.Fatalf("expected 3 triangles from a pentagon, got %d", len(m.Triangles))
	}

	// Each triangle is (first, i-1, i)
	wantSecond := [][3]float32{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	wantThird := [][3]float32{{1, 1, 0}, {0, 1, 0}, {-1, 1, 0}}
	for i, tri := range m.Triangles {
		if tri.Vertices[0].Position != ([3]float32{0, 0, 0}) {
			t.Errorf("triangle %d: fan anchor moved to %v", i, tri.Vertices[0].Position)
		}
		if tri.Vertices[1].Position != wantSecond[i] || tri.Vertices[2].Position != wantThird[i] {
			t.Errorf("triangle %d: got %v, %v", i, tri.Vertices[1].Position, tri.Vertices[2].Position)
		}
	}
}

func TestParse_TokenForms(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
vn 0 0 1
f 1//1 2//1 3//1
f 1/1 2/1 3/1
f 1 2 3
`
	m, err := ParseString(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(m.Triangles) != 3 {
		t.Fatalf("expected 3 triangles, got %d", len(m.Triangles))
	}

	// v//vn: normal set, uv default
	v := m.Triangles[0].Vertices[0]
	if v.Normal != ([3]float32{0, 0, 1}) || v.TexCoord != ([2]float32{0, 0}) {
		t.Errorf("v//vn: got normal %v uv %v", v.Normal, v.TexCoord)
	}

	// v/vt: uv set, normal default
	v = m.Triangles[1].Vertices[0]
	if v.TexCoord != ([2]float32{0.5, 0.5}) || v.Normal != ([3]float32{0, 1, 0}) {
		t.Errorf("v/vt: got normal %v uv %v", v.Normal, v.TexCoord)
	}

	// v: both default
	v = m.Triangles[2].Vertices[0]
	if v.TexCoord != ([2]float32{0, 0}) || v.Normal != ([3]float32{0, 1, 0}) {
		t.Errorf("v: got normal %v uv %v", v.Normal, v.TexCoord)
	}
}

func TestParse_MaterialsAndLeniency(t *testing.T) {
	src := `
# comment
o boat
v 0 0 0
v 1 0 0
v 0 1 0
v garbage here
usemtl hull
f 1 2 3
f 1 2
f 1 2 99
usemtl white
s off
f 3 2 1
`
	m, err := ParseString(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(m.Triangles))
	}
	if m.Triangles[0].Material != "hull" || m.Triangles[1].Material != "white" {
		t.Errorf("materials: got %q, %q", m.Triangles[0].Material, m.Triangles[1].Material)
	}
	if m.Skipped != 3 {
		t.Errorf("expected 3 skipped records, got %d", m.Skipped)
	}
	if m.Positions != 3 {
		t.Errorf("expected 3 positions, got %d", m.Positions)
	}
}

func TestParse_NoFaces(t *testing.T) {
	_, err := ParseString("v 0 0 0\n")
	if !errors.Is(err, ErrNoFaces) {
		t.Errorf("expected ErrNoFaces, got %v", err)
	}
}

func TestParseMTL(t *testing.T) {
	src := `
newmtl hull
Kd 0.8 0.8 0.8
map_Kd boat_hull.jpg

newmtl white
Kd 1 1 1

newmtl deck
map_Kd  textures/deck.png
`
	textures, err := ParseMTL(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMTL failed: %v", err)
	}
	if len(textures) != 2 {
		t.Fatalf("expected 2 textured materials, got %d: %v", len(textures), textures)
	}
	if textures["hull"] != "boat_hull.jpg" {
		t.Errorf("hull: got %q", textures["hull"])
	}
	if textures["deck"] != "textures/deck.png" {
		t.Errorf("deck: got %q", textures["deck"])
	}
	if _, ok := textures["white"]; ok {
		t.Error("white has no map_Kd and should be absent")
	}
}
