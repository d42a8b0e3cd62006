package app

import (
	"errors"
	"fmt"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
	"falling-sand/internal/paint"
)

// ErrNotPaintable is returned when a simulation cannot accept paint commands.
var ErrNotPaintable = errors.New("simulation does not accept paint commands")

// Status summarizes the driver state for on-screen display.
type Status struct {
	Material material.ID
	Radius   int
	Paused   bool
	Ticks    uint64
	Interval string
}

// Lines renders the status as HUD rows.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Brush: %s r=%d", s.Material, s.Radius),
		fmt.Sprintf("State: %s", state),
		fmt.Sprintf("Ticks: %d", s.Ticks),
		fmt.Sprintf("Interval: %s", s.Interval),
	}
}

// Driver owns a simulation and everything that feeds it: the paint queue,
// the brush selection and the tick throttle. Paint is only ever applied
// between ticks.
type Driver struct {
	sim    core.Sim
	target paint.Target
	queue  *paint.Queue
	brush  paint.Brush
	step   *core.FixedStep

	paused   bool
	tickOnce bool
	ticks    uint64
	seed     int64

	stroking     bool
	lastX, lastY int
}

// NewDriver wires a simulation to a paint queue and a fixed-interval throttle.
func NewDriver(sim core.Sim, cfg *Config) (*Driver, error) {
	target, ok := sim.(paint.Target)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sim.Name(), ErrNotPaintable)
	}
	id, err := material.Parse(cfg.Material)
	if err != nil {
		return nil, fmt.Errorf("brush: %w", err)
	}
	return &Driver{
		sim:    sim,
		target: target,
		queue:  paint.NewQueue(),
		brush:  paint.Brush{Material: id, Radius: cfg.Radius},
		step:   core.NewFixedInterval(cfg.Interval),
		seed:   cfg.Seed,
	}, nil
}

// Sim returns the driven simulation.
func (d *Driver) Sim() core.Sim { return d.sim }

// Brush exposes the current brush for selection changes.
func (d *Driver) Brush() *paint.Brush { return &d.brush }

// StrokeTo extends the current stroke to grid cell (x, y). The first call of
// a stroke paints only the footprint at (x, y).
func (d *Driver) StrokeTo(x, y int) { d.StrokeBand(x, y, 1) }

// StrokeBand extends the current stroke to the h cells stacked downwards from
// (x, y). Front ends whose pointer covers several grid rows use it.
func (d *Driver) StrokeBand(x, y, h int) {
	if !d.stroking {
		d.stroking = true
		d.lastX, d.lastY = x, y
	}
	for dy := 0; dy < max(h, 1); dy++ {
		d.queue.Stroke(d.lastX, d.lastY+dy, x, y+dy, d.brush)
	}
	d.lastX, d.lastY = x, y
}

// EndStroke finishes the current stroke.
func (d *Driver) EndStroke() { d.stroking = false }

// SelectKey switches the brush material bound to key and reports whether the
// key was recognised. The number row maps digit n to material ID n.
func (d *Driver) SelectKey(key rune) bool {
	if key < '0' || key >= '0'+rune(material.Count) {
		return false
	}
	d.brush.Material = material.MustFromByte(uint8(key - '0'))
	return true
}

// TogglePause pauses or resumes ticking.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// Resume clears the paused state.
func (d *Driver) Resume() { d.paused = false }

// StepOnce requests a single tick even while paused.
func (d *Driver) StepOnce() { d.tickOnce = true }

// Reset reinitializes the simulation with seed and drops pending paint.
func (d *Driver) Reset(seed int64) {
	d.seed = seed
	d.queue.Clear()
	d.sim.Reset(seed)
	d.ticks = 0
	d.tickOnce = false
	d.step.Reset()
}

// Seed returns the seed of the last reset.
func (d *Driver) Seed() int64 { return d.seed }

// Advance applies pending paint and then runs at most one tick if one is
// due. It reports whether a tick ran.
func (d *Driver) Advance() bool {
	d.queue.Drain(d.target)
	if d.tickOnce {
		d.tickOnce = false
		d.tick()
		return true
	}
	if d.paused || !d.step.ShouldStep() {
		return false
	}
	d.tick()
	return true
}

func (d *Driver) tick() {
	d.sim.Step()
	d.ticks++
}

// Frame snapshots the simulation into buf.
func (d *Driver) Frame(buf []byte) error {
	return d.sim.Draw(buf)
}

// Status reports the driver state.
func (d *Driver) Status() Status {
	return Status{
		Material: d.brush.Material,
		Radius:   d.brush.Radius,
		Paused:   d.paused,
		Ticks:    d.ticks,
		Interval: d.step.Interval().String(),
	}
}
