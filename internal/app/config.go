package app

import (
	"flag"
	"strconv"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
)

// Config represents the command-line parameters for the front ends.
type Config struct {
	Sim      string
	Scale    int
	Interval time.Duration
	Seed     int64
	Width    int
	Height   int
	Terrain  bool
	Radius   int
	Material string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Scale:    10,
		Interval: core.DefaultInterval,
		Seed:     42,
		Width:    64,
		Height:   48,
		Terrain:  true,
		Radius:   0,
		Material: material.Sand.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "minimum time between simulation ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.BoolVar(&c.Terrain, "terrain", c.Terrain, "generate stone terrain on reset")
	fs.IntVar(&c.Radius, "radius", c.Radius, "initial brush half-size")
	fs.StringVar(&c.Material, "material", c.Material, "initial brush material (air, sand, stone, water, dirt, coal)")
}

// SimConfig converts the relevant options into the key/value form consumed
// by simulation factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"terrain": strconv.FormatBool(c.Terrain),
	}
}
