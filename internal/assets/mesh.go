package assets

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/nightreef/pkg/objfile"
)

// LoadMesh reads an OBJ, glTF or GLB file into a triangle list. OBJ
// files that contain no faces return ErrNoFaces from package objfile.
func (m *Manager) LoadMesh(name string) ([]objfile.Triangle, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".obj":
		data, err := m.Load(name)
		if err != nil {
			return nil, err
		}
		model, err := objfile.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return model.Triangles, nil
	case ".gltf", ".glb":
		full, err := m.Resolve(name)
		if err != nil {
			return nil, err
		}
		tris, err := readGLTF(full)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		return tris, nil
	default:
		return nil, fmt.Errorf("loading %s: unsupported mesh format", name)
	}
}

// LoadMaterials reads an MTL file. Texture paths are returned relative to
// the asset root by prefixing the MTL file's own directory.
func (m *Manager) LoadMaterials(name string) (map[string]string, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	table, err := objfile.ParseMTL(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	dir := path.Dir(filepath.ToSlash(name))
	for mat, tex := range table {
		table[mat] = path.Join(dir, filepath.ToSlash(tex))
	}
	return table, nil
}

var errNoPosition = errors.New("primitive has no POSITION attribute")

func readGLTF(filename string) ([]objfile.Triangle, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, err
	}

	var tris []objfile.Triangle
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			t, err := readPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}
			tris = append(tris, t...)
		}
	}
	if len(tris) == 0 {
		return nil, objfile.ErrNoFaces
	}
	return tris, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]objfile.Triangle, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, errNoPosition
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			normals = nil
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			uvs = nil
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	material := objfile.DefaultMaterial
	if prim.Material != nil && *prim.Material < len(doc.Materials) && doc.Materials[*prim.Material].Name != "" {
		material = doc.Materials[*prim.Material].Name
	}

	vertex := func(i uint32) (objfile.Vertex, bool) {
		if int(i) >= len(positions) {
			return objfile.Vertex{}, false
		}
		v := objfile.Vertex{Position: positions[i], Normal: [3]float32{0, 1, 0}}
		if int(i) < len(normals) {
			v.Normal = normals[i]
		}
		if int(i) < len(uvs) {
			v.TexCoord = uvs[i]
		}
		return v, true
	}

	tris := make([]objfile.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		var t objfile.Triangle
		t.Material = material
		ok := true
		for k := 0; k < 3 && ok; k++ {
			t.Vertices[k], ok = vertex(indices[i+k])
		}
		if ok {
			tris = append(tris, t)
		}
	}
	return tris, nil
}
