package mesh

import (
	"github.com/Faultbox/nightreef/pkg/objfile"
)

// GroupByMaterial splits triangles into one batch per material, ordered by
// the first appearance of each material.
func GroupByMaterial(tris []objfile.Triangle) []Batch {
	index := make(map[string]int)
	var batches []Batch

	for i := range tris {
		name := tris[i].Material
		idx, ok := index[name]
		if !ok {
			idx = len(batches)
			index[name] = idx
			batches = append(batches, Batch{Material: name})
		}
		b := &batches[idx]
		for _, v := range tris[i].Vertices {
			b.Vertices = append(b.Vertices, Vertex(v))
		}
	}
	return batches
}

// Flatten merges all triangles into one batch regardless of material.
func Flatten(name string, tris []objfile.Triangle) Batch {
	b := Batch{Material: name, Vertices: make([]Vertex, 0, len(tris)*3)}
	for i := range tris {
		for _, v := range tris[i].Vertices {
			b.Vertices = append(b.Vertices, Vertex(v))
		}
	}
	return b
}

// InterleavedStride is the byte stride of Interleave output.
const InterleavedStride = 8 * FloatSize

// Interleave lays the batch out as position(3) normal(3) uv(2) per vertex.
func Interleave(b *Batch) []float32 {
	out := make([]float32, 0, len(b.Vertices)*8)
	for i := range b.Vertices {
		v := &b.Vertices[i]
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
