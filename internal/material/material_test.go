package material

import (
	"errors"
	"image/color"
	"testing"

	"falling-sand/internal/core"
)

func TestFromByte(t *testing.T) {
	for _, id := range All() {
		got, err := FromByte(uint8(id))
		if err != nil || got != id {
			t.Fatalf("FromByte(%d) = %v, %v", id, got, err)
		}
	}
	if _, err := FromByte(uint8(Count)); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for out-of-range tag, got %v", err)
	}
}

func TestMustFromBytePanicsOnUnknownTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown material tag")
		}
	}()
	MustFromByte(200)
}

func TestParse(t *testing.T) {
	id, err := Parse(" Water ")
	if err != nil || id != Water {
		t.Fatalf("Parse(water) = %v, %v", id, err)
	}
	if _, err := Parse("lava"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for unknown name, got %v", err)
	}
}

func TestProperties(t *testing.T) {
	solid := map[ID]bool{Air: false, Sand: true, Stone: true, Water: false, Dirt: true, Coal: true}
	for id, want := range solid {
		if got := id.IsSolid(); got != want {
			t.Errorf("%v.IsSolid() = %v, want %v", id, got, want)
		}
	}
	if !Air.IsAir() || Sand.IsAir() {
		t.Error("only Air should report IsAir")
	}
	if d, ok := Water.Density(); !ok || d != 1.0 {
		t.Errorf("water density = %v, %v", d, ok)
	}
	for _, id := range []ID{Air, Sand, Stone, Dirt, Coal} {
		if _, ok := id.Density(); ok {
			t.Errorf("%v should have no density", id)
		}
	}
}

func TestBehaviorBindings(t *testing.T) {
	cases := []struct {
		id       ID
		kind     Kind
		loss     float64
		friction float64
	}{
		{Air, KindStatic, 0, 0},
		{Stone, KindStatic, 0, 0},
		{Sand, KindGranular, 1.5, 0.9},
		{Dirt, KindGranular, 1.7, 0.8},
		{Coal, KindGranular, 2.0, 0.7},
		{Water, KindLiquid, 0, 0},
	}
	for _, tc := range cases {
		spec := tc.id.Behavior()
		if spec.Kind != tc.kind || spec.CollisionVelocityLoss != tc.loss || spec.Friction != tc.friction {
			t.Errorf("%v behavior = %+v", tc.id, spec)
		}
	}
	if Water.Behavior().DispersionRate <= 0 {
		t.Error("water needs a positive dispersion rate")
	}
}

func TestVariedColorStaysWithinVariance(t *testing.T) {
	rng := core.NewRNG(3)
	for _, id := range All() {
		base := id.BaseColor()
		for i := 0; i < 200; i++ {
			c := id.VariedColor(rng)
			if id == Air {
				if c != (color.RGBA{}) {
					t.Fatalf("air color = %v, want transparent black", c)
				}
				continue
			}
			if c.A != base.A {
				t.Fatalf("%v alpha changed: %d", id, c.A)
			}
			check := func(ch string, got, b uint8) {
				lo := max(int(b)-ColorVariance, 0)
				hi := min(int(b)+ColorVariance, 255)
				if int(got) < lo || int(got) > hi {
					t.Fatalf("%v %s=%d outside [%d, %d]", id, ch, got, lo, hi)
				}
			}
			check("R", c.R, base.R)
			check("G", c.G, base.G)
			check("B", c.B, base.B)
		}
	}
}

func TestVariedColorSaturates(t *testing.T) {
	rng := core.NewRNG(11)
	for i := 0; i < 200; i++ {
		if c := Sand.VariedColor(rng); c.R < 0xff-ColorVariance {
			t.Fatalf("sand red channel %d below saturated range", c.R)
		}
	}
}
