package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types the decoder understands.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

// ErrTGATruncated is returned when pixel data ends early.
var ErrTGATruncated = errors.New("tga: truncated")

// DecodeTGA decodes uncompressed and RLE true-color TGA files with 24 or
// 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, ErrTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	d := tgaDecoder{
		src:    data[offset:],
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		bytes:  bpp / 8,
		flip:   !topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	src    []byte
	pos    int
	img    *image.RGBA
	width  int
	height int
	bytes  int
	flip   bool
}

// pixel reads one BGR(A) pixel.
func (d *tgaDecoder) pixel() (color.RGBA, bool) {
	if d.pos+d.bytes > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytes == 4 {
		c.A = p[3]
	}
	d.pos += d.bytes
	return c, true
}

func (d *tgaDecoder) put(i int, c color.RGBA) {
	x, y := i%d.width, i/d.width
	if d.flip {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) raw() error {
	for i := 0; i < d.width*d.height; i++ {
		c, ok := d.pixel()
		if !ok {
			return ErrTGATruncated
		}
		d.put(i, c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.width * d.height
	for i := 0; i < total; {
		if d.pos >= len(d.src) {
			return ErrTGATruncated
		}
		header := d.src[d.pos]
		d.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := d.pixel()
			if !ok {
				return ErrTGATruncated
			}
			for n := 0; n < count && i < total; n++ {
				d.put(i, c)
				i++
			}
			continue
		}
		for n := 0; n < count && i < total; n++ {
			c, ok := d.pixel()
			if !ok {
				return ErrTGATruncated
			}
			d.put(i, c)
			i++
		}
	}
	return nil
}
