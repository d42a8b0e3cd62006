package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// PixelAt reads the RGBA pixel for cell (x, y) from a row-major buffer of
// width w.
func PixelAt(buf []byte, w, x, y int) color.RGBA {
	base := (y*w + x) * 4
	return color.RGBA{R: buf[base+0], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

// Composite blends c over an opaque background according to its alpha.
func Composite(c color.RGBA, bg colorful.Color) colorful.Color {
	switch c.A {
	case 0:
		return bg
	case 0xff:
		fg, _ := colorful.MakeColor(c)
		return fg
	}
	// colorful works on straight alpha; the frame buffer holds straight RGBA.
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return bg.BlendRgb(fg, float64(c.A)/255)
}

// FlattenRGBA composites every pixel of src over bg and writes opaque pixels
// into dst. Both buffers must have the same length.
func FlattenRGBA(dst, src []byte, bg color.RGBA) {
	back, _ := colorful.MakeColor(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff})
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		c := color.RGBA{R: src[i+0], G: src[i+1], B: src[i+2], A: src[i+3]}
		if c.A == 0xff {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		r, g, b := Composite(c, back).RGB255()
		dst[i+0] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = 0xff
	}
}
