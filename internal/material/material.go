// Package material holds the static per-material property table used by the
// sand simulation: colors, solidity, liquid density and the behavior binding
// of each material.
package material

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"falling-sand/internal/core"
)

// ID identifies the kind of substance occupying a cell.
type ID uint8

const (
	Air ID = iota
	Sand
	Stone
	Water
	Dirt
	Coal
)

// Count is the number of known materials.
const Count = int(Coal) + 1

// ColorVariance is the per-channel jitter applied around a base color.
const ColorVariance = 5

// ErrInvalidID is returned when a raw value does not name a material.
var ErrInvalidID = errors.New("invalid material id")

// Kind selects the movement algorithm bound to a material.
type Kind uint8

const (
	KindStatic Kind = iota
	KindGranular
	KindLiquid
)

// BehaviorSpec carries the per-material physics constants a new cell starts with.
type BehaviorSpec struct {
	Kind Kind

	// Granular materials.
	CollisionVelocityLoss float64
	Friction              float64

	// Liquids.
	DispersionRate int
}

type properties struct {
	name     string
	solid    bool
	color    color.RGBA
	density  float64
	liquid   bool
	behavior BehaviorSpec
}

var table = [Count]properties{
	Air: {
		name:     "air",
		color:    color.RGBA{},
		behavior: BehaviorSpec{Kind: KindStatic},
	},
	Sand: {
		name:     "sand",
		solid:    true,
		color:    color.RGBA{R: 0xff, G: 0xf4, B: 0x9f, A: 0xff},
		behavior: BehaviorSpec{Kind: KindGranular, CollisionVelocityLoss: 1.5, Friction: 0.9},
	},
	Stone: {
		name:     "stone",
		solid:    true,
		color:    color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		behavior: BehaviorSpec{Kind: KindStatic},
	},
	Water: {
		name:     "water",
		color:    color.RGBA{R: 0x57, G: 0xa4, B: 0xff, A: 0xff},
		density:  1.0,
		liquid:   true,
		behavior: BehaviorSpec{Kind: KindLiquid, DispersionRate: 4},
	},
	Dirt: {
		name:     "dirt",
		solid:    true,
		color:    color.RGBA{R: 0x92, G: 0x61, B: 0x18, A: 0xff},
		behavior: BehaviorSpec{Kind: KindGranular, CollisionVelocityLoss: 1.7, Friction: 0.8},
	},
	Coal: {
		name:     "coal",
		solid:    true,
		color:    color.RGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff},
		behavior: BehaviorSpec{Kind: KindGranular, CollisionVelocityLoss: 2.0, Friction: 0.7},
	},
}

// FromByte converts a raw tag into an ID.
func FromByte(b uint8) (ID, error) {
	if int(b) >= Count {
		return Air, fmt.Errorf("%w: %d", ErrInvalidID, b)
	}
	return ID(b), nil
}

// MustFromByte is like FromByte but panics on unknown values. It is meant for
// tags produced by this program, never for external input.
func MustFromByte(b uint8) ID {
	id, err := FromByte(b)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse resolves a material by its lowercase name.
func Parse(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range table {
		if table[i].name == name {
			return ID(i), nil
		}
	}
	return Air, fmt.Errorf("%w: %q", ErrInvalidID, name)
}

// All lists every known material in ID order.
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id names a known material.
func (id ID) Valid() bool { return int(id) < Count }

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("material(%d)", uint8(id))
	}
	return table[id].name
}

// IsAir reports whether the material is empty space.
func (id ID) IsAir() bool { return id == Air }

// IsSolid reports whether the material blocks penetration and supports
// resting cells.
func (id ID) IsSolid() bool { return table[id].solid }

// Density returns the liquid density; ok is false for non-liquids.
func (id ID) Density() (density float64, ok bool) {
	p := table[id]
	return p.density, p.liquid
}

// BaseColor returns the unperturbed material color.
func (id ID) BaseColor() color.RGBA { return table[id].color }

// Behavior returns the physics constants bound to the material.
func (id ID) Behavior() BehaviorSpec { return table[id].behavior }

// VariedColor returns the base color with R, G and B independently jittered
// by up to ColorVariance, saturating at 0 and 255. Air is always transparent
// black and consumes no randomness.
func (id ID) VariedColor(rng *core.RNG) color.RGBA {
	if id.IsAir() {
		return color.RGBA{}
	}
	base := id.BaseColor()
	return color.RGBA{
		R: jitter(base.R, rng),
		G: jitter(base.G, rng),
		B: jitter(base.B, rng),
		A: base.A,
	}
}

func jitter(v uint8, rng *core.RNG) uint8 {
	lo := max(int(v)-ColorVariance, 0)
	hi := min(int(v)+ColorVariance, 255)
	return uint8(rng.IntRange(lo, hi))
}
