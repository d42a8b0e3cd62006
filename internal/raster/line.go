// Package raster walks discrete straight lines between grid coordinates.
package raster

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Walk visits every point of the Bresenham line from (x0, y0) to (x1, y1),
// both endpoints included, in order from the start. The walk stops early
// when visit returns false.
func Walk(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if !visit(x, y) {
			return
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Line returns the points of the line from (x0, y0) to (x1, y1).
func Line(x0, y0, x1, y1 int) []Point {
	pts := make([]Point, 0, max(abs(x1-x0), abs(y1-y0))+1)
	Walk(x0, y0, x1, y1, func(x, y int) bool {
		pts = append(pts, Point{X: x, Y: y})
		return true
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
