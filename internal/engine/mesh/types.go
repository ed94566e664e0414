// Package mesh turns parsed triangle records into draw-ready batches.
package mesh

import "math"

// FloatSize is the byte size of one vertex component.
const FloatSize = 4

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Batch is an immutable triangle list sharing one material.
type Batch struct {
	Material string
	Vertices []Vertex
}

// VertexCount returns the number of vertices in the batch.
func (b *Batch) VertexCount() int {
	return len(b.Vertices)
}

// Bounds computes the axis-aligned bounding box of the batch.
func (b *Batch) Bounds() Bounds {
	bounds := EmptyBounds()
	for i := range b.Vertices {
		bounds.Extend(b.Vertices[i].Position)
	}
	return bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns an inverted box that any point will extend.
func EmptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// Extend grows the box to include p.
func (b *Bounds) Extend(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Span returns the extent along each axis.
func (b Bounds) Span() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Range is a contiguous vertex range inside a shared buffer.
type Range struct {
	First int32
	Count int32
}
