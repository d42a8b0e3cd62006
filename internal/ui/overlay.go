//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type stationaryProvider interface {
	StationaryMask(dst []bool)
}

// settledTint marks cells that have stopped moving.
var settledTint = color.RGBA{R: 64, G: 164, B: 223, A: 110}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim         core.Sim
	scale       int
	showSettled bool

	mask    []bool
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the settled-cell tint with the O key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showSettled = !o.showSettled
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showSettled {
		return
	}
	provider, ok := o.sim.(stationaryProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || len(o.mask) != total {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.mask = make([]bool, total)
		o.maskBuf = make([]byte, 4*total)
	}

	provider.StationaryMask(o.mask)
	for i, settled := range o.mask {
		base := i * 4
		if !settled {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// WritePixels expects premultiplied alpha.
		a := uint32(settledTint.A)
		o.maskBuf[base+0] = uint8(uint32(settledTint.R) * a / 255)
		o.maskBuf[base+1] = uint8(uint32(settledTint.G) * a / 255)
		o.maskBuf[base+2] = uint8(uint32(settledTint.B) * a / 255)
		o.maskBuf[base+3] = settledTint.A
	}
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
