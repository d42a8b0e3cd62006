// Package paint turns pointer strokes into single-cell paint commands and
// queues them until the simulation is between ticks.
package paint

import (
	"falling-sand/internal/material"
	"falling-sand/internal/raster"

	"github.com/gammazero/deque"
)

// MaxRadius bounds the brush half-size.
const MaxRadius = 16

// Command writes one material into one cell.
type Command struct {
	X, Y     int
	Material material.ID
}

// Target receives paint commands. Out-of-bounds coordinates must be ignored.
type Target interface {
	Paint(x, y int, id material.ID)
}

// Brush is the current paint selection.
type Brush struct {
	Material material.ID
	// Radius is the half-size of the square footprint; 0 paints one cell.
	Radius int
}

// Grow changes the radius by delta, clamped to [0, MaxRadius].
func (b *Brush) Grow(delta int) {
	b.Radius = min(max(b.Radius+delta, 0), MaxRadius)
}

// Queue is a FIFO of paint commands.
type Queue struct {
	cmds deque.Deque[Command]
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return q.cmds.Len() }

// Push appends a single command.
func (q *Queue) Push(cmd Command) { q.cmds.PushBack(cmd) }

// Stroke queues the brush footprint at every point of the line from
// (x0, y0) to (x1, y1).
func (q *Queue) Stroke(x0, y0, x1, y1 int, b Brush) {
	r := b.Radius
	for _, p := range raster.Line(x0, y0, x1, y1) {
		for x := p.X - r; x <= p.X+r; x++ {
			for y := p.Y - r; y <= p.Y+r; y++ {
				q.Push(Command{X: x, Y: y, Material: b.Material})
			}
		}
	}
}

// Drain applies every pending command to t in insertion order and returns
// how many were applied.
func (q *Queue) Drain(t Target) int {
	n := 0
	for q.Len() > 0 {
		cmd := q.cmds.PopFront()
		t.Paint(cmd.X, cmd.Y, cmd.Material)
		n++
	}
	return n
}

// Clear drops all pending commands.
func (q *Queue) Clear() { q.cmds.Clear() }
