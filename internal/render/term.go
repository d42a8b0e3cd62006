package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf draws the top cell as foreground and the bottom cell as background.
const upperHalf = '▀'

// TermPainter draws an RGBA cell buffer onto a terminal, packing two grid
// rows into every character row.
type TermPainter struct {
	w, h int
	buf  []byte
	bg   colorful.Color
}

// NewTermPainter allocates a painter for a grid of size w*h drawn over bg.
func NewTermPainter(w, h int, bg color.RGBA) *TermPainter {
	back, _ := colorful.MakeColor(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff})
	return &TermPainter{w: w, h: h, buf: make([]byte, 4*w*h), bg: back}
}

// Buffer exposes the frame buffer the simulation draws into.
func (tp *TermPainter) Buffer() []byte { return tp.buf }

// Rows returns the number of terminal rows needed for the grid.
func (tp *TermPainter) Rows() int { return (tp.h + 1) / 2 }

// CellAt maps a terminal position relative to the painter origin to the grid
// cells drawn in that character: column x, rows y through y+h-1. h is 1 only
// for the last character row of a grid with an odd height.
func (tp *TermPainter) CellAt(col, row int) (x, y, h int) {
	y = row * 2
	h = 2
	if y+1 >= tp.h {
		h = 1
	}
	return col, y, h
}

// Blit draws the buffer at terminal offset (ox, oy), clipped to the screen.
func (tp *TermPainter) Blit(screen tcell.Screen, ox, oy int) {
	sw, sh := screen.Size()
	for row := 0; row < tp.Rows(); row++ {
		sy := oy + row
		if sy < 0 || sy >= sh {
			continue
		}
		for x := 0; x < tp.w; x++ {
			sx := ox + x
			if sx < 0 || sx >= sw {
				continue
			}
			top := PixelAt(tp.buf, tp.w, x, row*2)
			bottom := color.RGBA{}
			if row*2+1 < tp.h {
				bottom = PixelAt(tp.buf, tp.w, x, row*2+1)
			}
			ch, style := tp.cell(top, bottom)
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}
}

func (tp *TermPainter) cell(top, bottom color.RGBA) (rune, tcell.Style) {
	fg := termColor(Composite(top, tp.bg))
	bg := termColor(Composite(bottom, tp.bg))
	return upperHalf, tcell.StyleDefault.Foreground(fg).Background(bg)
}

func termColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
