package sand

import (
	"math"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
)

const (
	gravity          = 0.1
	initialVelocityY = 1.0

	// Lateral velocity only decays above this speed and snaps to zero below
	// lateralSnap.
	frictionThreshold = 0.95
	lateralSnap       = 0.1
)

// Behavior is the movement strategy of a cell together with its per-cell
// physics state. Kind selects the algorithm; only the fields of that kind are
// meaningful.
type Behavior struct {
	Kind material.Kind

	VelocityX             float64
	VelocityY             float64
	Friction              float64
	CollisionVelocityLoss float64

	DispersionRate int
	Density        float64
}

func newBehavior(id material.ID) Behavior {
	props := id.Behavior()
	b := Behavior{Kind: props.Kind}
	switch props.Kind {
	case material.KindGranular:
		b.VelocityY = initialVelocityY
		b.Friction = props.Friction
		b.CollisionVelocityLoss = props.CollisionVelocityLoss
	case material.KindLiquid:
		b.DispersionRate = props.DispersionRate
		b.Density, _ = id.Density()
	}
	return b
}

// NextPosition returns where the cell at (x, y) wants to move this tick. The
// world is only read; the behavior's own velocities are updated.
func (b *Behavior) NextPosition(x, y int, w *World, rng *core.RNG) (int, int) {
	switch b.Kind {
	case material.KindGranular:
		return b.granular(x, y, w, rng)
	case material.KindLiquid:
		return b.liquid(x, y, w, rng)
	default:
		return x, y
	}
}

func (b *Behavior) granular(x, y int, w *World, rng *core.RNG) (int, int) {
	if math.Abs(b.VelocityX) > frictionThreshold {
		b.VelocityX *= b.Friction
		if math.Abs(b.VelocityX) < lateralSnap {
			b.VelocityX = 0
		}
	}
	b.VelocityY += gravity

	reach := int(b.VelocityY)
	targetY := y + reach
	dir := rng.Sign()

	nx, ny := w.probe(x, y, x, targetY, acceptAir)
	if nx != x || ny != y {
		if below, ok := w.Get(nx, ny+1); ok && below.Material.IsSolid() && below.Stationary {
			b.VelocityX = math.Abs(b.VelocityY) / b.CollisionVelocityLoss * float64(dir)
		}
		return nx, ny
	}

	drift := int(b.VelocityX)
	for _, d := range [2]int{dir, -dir} {
		for i := 0; i <= reach; i++ {
			nx, ny := w.probe(x, y, x+i*d+drift, targetY, acceptAir)
			if nx != x || ny != y {
				return nx, ny
			}
		}
	}
	return x, y
}

func (b *Behavior) liquid(x, y int, w *World, rng *core.RNG) (int, int) {
	accept := acceptLighter(b.Density)
	rate := b.DispersionRate

	if nx, ny := w.probe(x, y, x, y+rate, accept); nx != x || ny != y {
		return nx, ny
	}

	dir := rng.Sign()
	for _, d := range [2]int{dir, -dir} {
		if nx, ny := w.probe(x, y, x+rate*d, y, accept); nx != x || ny != y {
			return nx, ny
		}
	}
	for _, d := range [2]int{dir, -dir} {
		for i := 0; i <= rate; i++ {
			if nx, ny := w.probe(x, y, x+i*d, y+rate, accept); nx != x || ny != y {
				return nx, ny
			}
		}
	}
	return x, y
}
