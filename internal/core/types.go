package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a front end needs to drive a grid simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Draw writes one RGBA pixel per cell into buf, row-major.
	Draw(buf []byte) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
