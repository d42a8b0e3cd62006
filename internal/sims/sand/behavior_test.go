package sand

import (
	"math"
	"testing"

	"falling-sand/internal/material"
)

func TestNewBehaviorFromMaterial(t *testing.T) {
	sandB := newBehavior(material.Sand)
	if sandB.Kind != material.KindGranular || sandB.VelocityY != initialVelocityY || sandB.VelocityX != 0 {
		t.Fatalf("unexpected sand behavior %+v", sandB)
	}
	if sandB.Friction != 0.9 || sandB.CollisionVelocityLoss != 1.5 {
		t.Fatalf("sand constants not bound: %+v", sandB)
	}
	waterB := newBehavior(material.Water)
	if waterB.Kind != material.KindLiquid || waterB.DispersionRate != 4 || waterB.Density != 1 {
		t.Fatalf("unexpected water behavior %+v", waterB)
	}
	if b := newBehavior(material.Stone); b.Kind != material.KindStatic {
		t.Fatalf("stone should be static, got %+v", b)
	}
}

func TestStaticBehaviorStays(t *testing.T) {
	w := newTestWorld(3, 3)
	b := newBehavior(material.Stone)
	if x, y := b.NextPosition(1, 0, w, w.rng); x != 1 || y != 0 {
		t.Fatalf("static behavior moved to (%d,%d)", x, y)
	}
}

func TestGranularImpactTransfersVelocity(t *testing.T) {
	w := newTestWorld(7, 4)
	fillRow(w, 3, material.Stone)
	w.Paint(3, 2, material.Sand)
	base, _ := w.Get(3, 2)
	base.Stationary = true
	base.SamePositionCount = 2
	w.Set(3, 2, base)
	w.Paint(3, 0, material.Sand)

	w.Update()

	falling, _ := w.Get(3, 1)
	if falling.Material != material.Sand {
		t.Fatalf("expected falling sand at (3,1), got %v", falling.Material)
	}
	want := (initialVelocityY + gravity) / 1.5
	if got := math.Abs(falling.Behavior.VelocityX); math.Abs(got-want) > 1e-9 {
		t.Fatalf("lateral velocity %f, want magnitude %f", falling.Behavior.VelocityX, want)
	}

	w.Update()

	var landed [][2]int
	for _, p := range findAll(w, material.Sand) {
		if p != [2]int{3, 2} {
			landed = append(landed, p)
		}
	}
	if len(landed) != 1 || (landed[0] != [2]int{2, 2} && landed[0] != [2]int{4, 2}) {
		t.Fatalf("expected the sand to slide off the pile onto row 2, got %v", landed)
	}
}

func TestGranularNoTransferOnUnsettledSupport(t *testing.T) {
	w := newTestWorld(3, 4)
	fillRow(w, 3, material.Stone)
	w.Paint(1, 0, material.Sand)

	w.Update()
	w.Update()

	c, _ := w.Get(1, 2)
	if c.Material != material.Sand {
		t.Fatalf("expected sand at (1,2), got %v", c.Material)
	}
	if c.Behavior.VelocityX != 0 {
		t.Fatalf("landing on unsettled stone should not transfer velocity, got %f", c.Behavior.VelocityX)
	}
}

func TestGranularFriction(t *testing.T) {
	w := newTestWorld(1, 1)
	b := newBehavior(material.Coal)
	b.VelocityX = 2
	b.NextPosition(0, 0, w, w.rng)
	if math.Abs(b.VelocityX-2*0.7) > 1e-9 {
		t.Fatalf("expected friction to scale velocity to 1.4, got %f", b.VelocityX)
	}

	b.VelocityX = 0.5
	b.NextPosition(0, 0, w, w.rng)
	if b.VelocityX != 0.5 {
		t.Fatalf("slow lateral velocity should not decay, got %f", b.VelocityX)
	}
}

func TestGravityIsUncapped(t *testing.T) {
	w := newTestWorld(1, 1)
	b := newBehavior(material.Sand)
	for i := 0; i < 100; i++ {
		b.NextPosition(0, 0, w, w.rng)
	}
	if b.VelocityY < 10.9 {
		t.Fatalf("expected velocity to keep growing, got %f", b.VelocityY)
	}
}

func TestBehaviorStateTravelsWithCell(t *testing.T) {
	w := newTestWorld(1, 10)
	w.Paint(0, 0, material.Sand)

	w.Update()
	w.Update()

	pos := findAll(w, material.Sand)
	c, _ := w.Get(pos[0][0], pos[0][1])
	if want := initialVelocityY + 2*gravity; math.Abs(c.Behavior.VelocityY-want) > 1e-9 {
		t.Fatalf("velocity after two ticks = %f, want %f", c.Behavior.VelocityY, want)
	}
}

func TestDenserLiquidSwapsWithLighter(t *testing.T) {
	w := newTestWorld(1, 2)
	heavy := NewCell(material.Water, w.rng)
	heavy.Behavior.Density = 2
	light := NewCell(material.Water, w.rng)
	w.Set(0, 0, heavy)
	w.Set(0, 1, light)

	w.Update()

	bottom, _ := w.Get(0, 1)
	top, _ := w.Get(0, 0)
	if bottom.Behavior.Density != 2 || bottom.Color != heavy.Color {
		t.Fatalf("expected the heavy liquid to sink, bottom=%+v", bottom)
	}
	if top.Material != material.Water || top.Color != light.Color {
		t.Fatalf("expected the displaced liquid in the source slot, top=%+v", top)
	}
	if !top.MovedThisFrame || !bottom.MovedThisFrame {
		t.Fatal("both swapped cells should be flagged as moved")
	}
}

func TestWaterDoesNotDisplaceEqualWater(t *testing.T) {
	w := newTestWorld(1, 2)
	w.Paint(0, 0, material.Water)
	w.Paint(0, 1, material.Water)
	top, _ := w.Get(0, 0)

	w.Update()

	if c, _ := w.Get(0, 0); c.Color != top.Color {
		t.Fatal("equal-density water should not swap")
	}
}

// nextPositions runs a fresh behavior of id at (x, y) once per seed and
// returns every distinct destination.
func nextPositions(w *World, id material.ID, x, y int, seeds int) map[[2]int]int {
	seen := map[[2]int]int{}
	for seed := 1; seed <= seeds; seed++ {
		w.rng.Seed(int64(seed))
		b := newBehavior(id)
		nx, ny := b.NextPosition(x, y, w, w.rng)
		seen[[2]int{nx, ny}]++
	}
	return seen
}

func TestGranularFallsBackToMirroredDiagonal(t *testing.T) {
	cases := []struct {
		name    string
		blocked int
		want    [2]int
	}{
		{"left diagonal blocked", 1, [2]int{3, 1}},
		{"right diagonal blocked", 3, [2]int{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(5, 3)
			w.Paint(2, 1, material.Stone)
			w.Paint(tc.blocked, 1, material.Stone)

			seen := nextPositions(w, material.Sand, 2, 0, 32)
			if len(seen) != 1 || seen[tc.want] != 32 {
				t.Fatalf("expected every seed to land on %v, got %v", tc.want, seen)
			}
		})
	}
}

func TestLiquidFallsBackToMirroredHorizontal(t *testing.T) {
	cases := []struct {
		name    string
		blocked int
		want    [2]int
	}{
		{"left wall", 3, [2]int{8, 1}},
		{"right wall", 5, [2]int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(9, 3)
			fillRow(w, 2, material.Stone)
			w.Paint(tc.blocked, 1, material.Stone)

			seen := nextPositions(w, material.Water, 4, 1, 32)
			if len(seen) != 1 || seen[tc.want] != 32 {
				t.Fatalf("expected every seed to reach %v, got %v", tc.want, seen)
			}
		})
	}
}

func TestBoxedLiquidEscapesDiagonally(t *testing.T) {
	w := newTestWorld(9, 9)
	w.Paint(3, 1, material.Stone)
	w.Paint(5, 1, material.Stone)
	w.Paint(4, 2, material.Stone)

	seen := nextPositions(w, material.Water, 4, 1, 32)
	if len(seen) != 2 || seen[[2]int{2, 5}] == 0 || seen[[2]int{6, 5}] == 0 {
		t.Fatalf("expected diagonal escapes to (2,5) and (6,5), got %v", seen)
	}
}

func TestBoxedLiquidFallsBackToMirroredDiagonal(t *testing.T) {
	w := newTestWorld(9, 9)
	w.Paint(3, 1, material.Stone)
	w.Paint(5, 1, material.Stone)
	w.Paint(4, 2, material.Stone)
	w.Paint(5, 2, material.Stone)

	seen := nextPositions(w, material.Water, 4, 1, 32)
	if len(seen) != 1 || seen[[2]int{2, 5}] != 32 {
		t.Fatalf("expected every seed to escape to (2,5), got %v", seen)
	}
}

func TestFullyBoxedLiquidStays(t *testing.T) {
	w := newTestWorld(3, 3)
	for _, p := range [][2]int{{0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		w.Paint(p[0], p[1], material.Stone)
	}
	seen := nextPositions(w, material.Water, 1, 1, 8)
	if len(seen) != 1 || seen[[2]int{1, 1}] != 8 {
		t.Fatalf("boxed water should stay put, got %v", seen)
	}
}
