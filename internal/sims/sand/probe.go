package sand

import "falling-sand/internal/raster"

// acceptFunc decides whether a mover may pass through cell c at (x, y).
type acceptFunc func(c Cell, x, y int) bool

func acceptAir(c Cell, _, _ int) bool { return c.Material.IsAir() }

// acceptLighter lets a liquid of the given density pass through Air and any
// liquid that is strictly lighter.
func acceptLighter(density float64) acceptFunc {
	return func(c Cell, _, _ int) bool {
		if c.Material.IsAir() {
			return true
		}
		d, ok := c.Material.Density()
		return ok && d < density
	}
}

// probe walks the line from (x0, y0) towards (x1, y1), skipping the start,
// and returns the furthest point reached before the first rejected or
// out-of-bounds cell. The start is returned when the first step is blocked.
func (w *World) probe(x0, y0, x1, y1 int, accept acceptFunc) (int, int) {
	nx, ny := x0, y0
	raster.Walk(x0, y0, x1, y1, func(x, y int) bool {
		if x == x0 && y == y0 {
			return true
		}
		c := w.cells.At(x, y)
		if c == nil || !accept(*c, x, y) {
			return false
		}
		nx, ny = x, y
		return true
	})
	return nx, ny
}
