package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/nightreef/internal/engine/gfx"
)

func twoRowImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	return img
}

func TestDecode_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRowImage()))

	img, err := Decode("hull.png", buf.Bytes(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, img.Pix)

	flipped, err := Decode("hull.png", buf.Bytes(), true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255, 255, 0, 0, 255}, flipped.Pix)
}

func TestDecode_BMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, twoRowImage()))

	img, err := Decode("sky/Left+X.bmp", buf.Bytes(), false)
	require.NoError(t, err)
	assert.Equal(t, byte(255), img.Pix[0])
	assert.Equal(t, byte(255), img.Pix[6])
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("broken.jpg", []byte("not an image"), false)
	assert.Error(t, err)
}

func TestDecodeTGA_Uncompressed(t *testing.T) {
	// 2x1, 24 bpp, bottom-to-top: first stored row is the bottom row
	data := make([]byte, 18)
	data[2] = TGATypeUncompressed
	data[12], data[14], data[16] = 2, 1, 24
	data = append(data, 0, 0, 255, 255, 0, 0) // red, blue in BGR

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))
}

func TestDecodeTGA_RLE(t *testing.T) {
	data := make([]byte, 18)
	data[2] = TGATypeRLE
	data[12], data[14], data[16] = 3, 1, 32
	data[17] = 0x20
	// run of 3 green pixels
	data = append(data, 0x82, 0, 255, 0, 128)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		assert.Equal(t, color.RGBA{G: 255, A: 128}, img.RGBAAt(x, 0))
	}
}

func TestDecodeTGA_Truncated(t *testing.T) {
	data := make([]byte, 18)
	data[2] = TGATypeUncompressed
	data[12], data[14], data[16] = 4, 4, 24

	_, err := DecodeTGA(data)
	assert.True(t, errors.Is(err, ErrTGATruncated))

	_, err = DecodeTGA([]byte{1, 2})
	assert.ErrorIs(t, err, ErrTGATruncated)
}

func TestFlipY_OddHeight(t *testing.T) {
	img := gfx.Image{Width: 1, Height: 3, Pix: []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}}
	FlipY(&img)
	assert.Equal(t, []byte{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}, img.Pix)
}
