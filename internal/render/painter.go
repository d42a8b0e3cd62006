//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads an RGBA cell buffer into a single image and draws it
// scaled onto the screen.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
	out []byte
	bg  color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h drawn over bg.
func NewGridPainter(w, h int, bg color.RGBA) *GridPainter {
	gp := &GridPainter{buf: make([]byte, 4*w*h), out: make([]byte, 4*w*h), bg: bg}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Buffer exposes the frame buffer the simulation draws into.
func (gp *GridPainter) Buffer() []byte { return gp.buf }

// Blit uploads the current buffer and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	FlattenRGBA(gp.out, gp.buf, gp.bg)
	gp.img.WritePixels(gp.out)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
