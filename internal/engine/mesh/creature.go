package mesh

// Gradient tones for creature vertex colors: light belly, dark back.
var (
	BellyTone = [3]float32{0.89, 0.89, 0.89}
	BackTone  = [3]float32{0.19, 0.19, 0.19}
)

// CreatureBuffer packs several creature meshes into one planar buffer:
// every position, then every normal, then every color. Each creature keeps
// its vertex range so one upload serves all draws.
type CreatureBuffer struct {
	Data   []float32
	Ranges []Range
	Bounds []Bounds

	// Byte offsets of the normal and color blocks inside Data.
	NormalOffset int
	ColorOffset  int
}

// BuildCreatureBuffer concatenates the batches in order.
func BuildCreatureBuffer(batches ...Batch) CreatureBuffer {
	total := 0
	for i := range batches {
		total += len(batches[i].Vertices)
	}

	buf := CreatureBuffer{
		Data:         make([]float32, 0, total*9),
		Ranges:       make([]Range, len(batches)),
		Bounds:       make([]Bounds, len(batches)),
		NormalOffset: total * 3 * FloatSize,
		ColorOffset:  total * 6 * FloatSize,
	}

	first := int32(0)
	for i := range batches {
		buf.Ranges[i] = Range{First: first, Count: int32(len(batches[i].Vertices))}
		buf.Bounds[i] = batches[i].Bounds()
		first += buf.Ranges[i].Count
		for _, v := range batches[i].Vertices {
			buf.Data = append(buf.Data, v.Position[0], v.Position[1], v.Position[2])
		}
	}
	for i := range batches {
		for _, v := range batches[i].Vertices {
			buf.Data = append(buf.Data, v.Normal[0], v.Normal[1], v.Normal[2])
		}
	}
	for i := range batches {
		buf.Data = append(buf.Data, GradientColors(&batches[i], buf.Bounds[i])...)
	}
	return buf
}

// GradientColors shades each vertex by its height within the mesh: belly
// tone at the lowest Y, back tone at the highest.
func GradientColors(b *Batch, bounds Bounds) []float32 {
	minY := bounds.Min[1]
	rangeY := bounds.Max[1] - bounds.Min[1]
	if !(rangeY > 0) {
		rangeY = 1
	}

	colors := make([]float32, 0, len(b.Vertices)*3)
	for i := range b.Vertices {
		t := (b.Vertices[i].Position[1] - minY) / rangeY
		for c := 0; c < 3; c++ {
			colors = append(colors, BellyTone[c]*(1-t)+BackTone[c]*t)
		}
	}
	return colors
}
