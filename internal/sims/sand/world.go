// Package sand implements a falling-sand cellular automaton: a dense grid of
// material cells updated in place once per tick.
//
// Update visits columns left to right and each column top to bottom, moving
// cells in place. Cells later in that order observe earlier cells already at
// their new positions, so the order is part of the observable behavior.
package sand

import (
	"errors"
	"fmt"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
)

// ErrBufferSize is returned by Draw when the frame buffer does not hold
// exactly four bytes per cell.
var ErrBufferSize = errors.New("frame buffer size mismatch")

// World owns the cell grid and the random source driving it.
type World struct {
	cfg   Config
	cells *core.Grid[Cell]
	rng   *core.RNG
	ticks uint64
}

// New returns an all-Air world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-Air world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cells := core.NewGrid[Cell](cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cells.W, cells.H
	return &World{
		cfg:   cfg,
		cells: cells,
		rng:   core.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cells.W, H: w.cells.H} }

// Ticks returns the number of updates since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Get returns a copy of the cell at (x, y). ok is false out of bounds.
func (w *World) Get(x, y int) (c Cell, ok bool) {
	p := w.cells.At(x, y)
	if p == nil {
		return Cell{}, false
	}
	return *p, true
}

// Set replaces the cell at (x, y). Out-of-bounds writes are ignored.
func (w *World) Set(x, y int, c Cell) {
	if p := w.cells.At(x, y); p != nil {
		*p = c
	}
}

// Paint places a new cell of the given material at (x, y).
func (w *World) Paint(x, y int, id material.ID) {
	if !w.cells.InBounds(x, y) {
		return
	}
	w.Set(x, y, NewCell(id, w.rng))
}

// Reset clears the world, restarts the random sequence and lays terrain when
// enabled. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.cells.Clear()
	w.ticks = 0
	w.layTerrain(effective)
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Update() }

// Update runs one simulation tick over the whole grid.
func (w *World) Update() {
	cells := w.cells.Cells()
	for i := range cells {
		cells[i].MovedThisFrame = false
	}

	for x := 0; x < w.cells.W; x++ {
		for y := 0; y < w.cells.H; y++ {
			c := w.cells.At(x, y)
			if c.MovedThisFrame {
				continue
			}
			nx, ny := c.Behavior.NextPosition(x, y, w, w.rng)
			if nx == x && ny == y {
				c.markStill()
				continue
			}
			w.move(x, y, nx, ny)
		}
	}
	w.ticks++
}

// move relocates the cell at (x0, y0) to (x1, y1). A non-Air occupant of the
// destination is swapped into the source slot; otherwise the source becomes Air.
func (w *World) move(x0, y0, x1, y1 int) {
	src := w.cells.At(x0, y0)
	dst := w.cells.At(x1, y1)

	mover := *src
	mover.markMoved()

	displaced := *dst
	if displaced.Material.IsAir() {
		displaced = Cell{}
	} else {
		displaced.markMoved()
	}

	*dst = mover
	*src = displaced
}

// Draw writes every cell color into buf as row-major RGBA and then clears the
// per-tick moved flags. buf must hold exactly width*height*4 bytes.
func (w *World) Draw(buf []byte) error {
	cells := w.cells.Cells()
	if want := len(cells) * 4; len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), want)
	}
	for i := range cells {
		c := &cells[i]
		base := i * 4
		buf[base+0] = c.Color.R
		buf[base+1] = c.Color.G
		buf[base+2] = c.Color.B
		buf[base+3] = c.Color.A
		c.MovedThisFrame = false
	}
	return nil
}

// Counts returns how many cells of each material the world holds.
func (w *World) Counts() [material.Count]int {
	var counts [material.Count]int
	for _, c := range w.cells.Cells() {
		counts[c.Material]++
	}
	return counts
}

// Settled reports whether every non-Air cell is stationary.
func (w *World) Settled() bool {
	for _, c := range w.cells.Cells() {
		if !c.Material.IsAir() && !c.Stationary {
			return false
		}
	}
	return true
}

// StationaryMask marks the non-Air cells that are stationary. dst must hold
// one entry per cell; shorter slices are filled as far as they reach.
func (w *World) StationaryMask(dst []bool) {
	for i, c := range w.cells.Cells() {
		if i >= len(dst) {
			return
		}
		dst[i] = !c.Material.IsAir() && c.Stationary
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
