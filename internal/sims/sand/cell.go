package sand

import (
	"image/color"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
)

// settleThreshold is the same-position count above which a cell is stationary.
const settleThreshold = 1

// Cell is the state of one grid slot. The zero value is an Air cell. Cells are
// values: copying one copies its behavior state, so a moved cell keeps its
// velocities.
type Cell struct {
	Material material.ID
	Color    color.RGBA

	MovedThisFrame    bool
	Stationary        bool
	SamePositionCount uint8

	Behavior Behavior
}

// NewCell creates a freshly placed cell of the given material with a jittered
// color and the material's initial physics state.
func NewCell(id material.ID, rng *core.RNG) Cell {
	return Cell{
		Material: id,
		Color:    id.VariedColor(rng),
		Behavior: newBehavior(id),
	}
}

func (c *Cell) markMoved() {
	c.MovedThisFrame = true
	c.Stationary = false
	c.SamePositionCount = 0
}

func (c *Cell) markStill() {
	if c.Stationary {
		return
	}
	c.SamePositionCount++
	if c.SamePositionCount > settleThreshold {
		c.Stationary = true
	}
}
