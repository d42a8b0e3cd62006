package sand

import "strconv"

// Params holds tunables for the generated scene.
type Params struct {
	// Terrain lays a stone ground profile on Reset.
	Terrain bool
	// TerrainBase is the mean ground height as a fraction of the world height,
	// measured from the top.
	TerrainBase float64
	// TerrainAmplitude scales the noise relative to the world height.
	TerrainAmplitude float64
	// TerrainScale is the noise frequency across the world width.
	TerrainScale float64
}

// Config controls the world dimensions and scene generation.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Seed:   1337,
		Params: Params{
			Terrain:          true,
			TerrainBase:      0.85,
			TerrainAmplitude: 0.2,
			TerrainScale:     3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Terrain = parsed
		}
	}
	if v, ok := cfg["terrain_base"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.TerrainBase = parsed
		}
	}
	if v, ok := cfg["terrain_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.TerrainAmplitude = parsed
		}
	}
	if v, ok := cfg["terrain_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TerrainScale = parsed
		}
	}
	return c
}
