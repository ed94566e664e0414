package mesh

// WhiteMaterial is the one material name that falls back to solid white.
const WhiteMaterial = "white"

// Fallback colors for materials without a diffuse texture.
var (
	SolidWhite = [4]uint8{255, 255, 255, 255}
	SolidGray  = [4]uint8{77, 77, 77, 255} // 0.3 gray
)

// TextureSource says where a batch gets its texture from: an image path,
// or a solid 1x1 color when the material has none.
type TextureSource struct {
	Path  string
	Solid [4]uint8
}

// IsSolid reports whether the source is a solid color.
func (s TextureSource) IsSolid() bool {
	return s.Path == ""
}

// ResolveTexture looks up the material's diffuse texture. It never returns
// an empty source.
func ResolveTexture(material string, table map[string]string) TextureSource {
	if path, ok := table[material]; ok && path != "" {
		return TextureSource{Path: path}
	}
	if material == WhiteMaterial {
		return TextureSource{Solid: SolidWhite}
	}
	return TextureSource{Solid: SolidGray}
}
