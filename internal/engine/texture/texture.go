// Package texture decodes image files into the RGBA8 layout the GPU layer
// uploads.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
)

// Decode turns file contents into an RGBA image. The format is chosen by
// extension for TGA and sniffed for everything else (PNG, JPEG, BMP, TIFF).
// When flipY is set the rows are reversed so the first row is the bottom
// of the picture, as GL texture coordinates expect.
func Decode(name string, data []byte, flipY bool) (gfx.Image, error) {
	var rgba *image.RGBA

	if strings.EqualFold(filepath.Ext(name), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return gfx.Image{}, fmt.Errorf("decoding %s: %w", name, err)
		}
		rgba = img
	} else {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return gfx.Image{}, fmt.Errorf("decoding %s: %w", name, err)
		}
		rgba = ToRGBA(img)
	}

	out := gfx.Image{Width: rgba.Rect.Dx(), Height: rgba.Rect.Dy(), Pix: rgba.Pix}
	if flipY {
		FlipY(&out)
	}
	return out, nil
}

// ToRGBA converts any image to a tightly packed *image.RGBA at origin.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipY reverses the row order in place.
func FlipY(img *gfx.Image) {
	row := img.Width * 4
	tmp := make([]byte, row)
	for top, bottom := 0, img.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*row : (top+1)*row]
		b := img.Pix[bottom*row : (bottom+1)*row]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
