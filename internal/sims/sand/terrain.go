package sand

import (
	"falling-sand/internal/material"

	"github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2
	terrainBeta    = 2
	terrainOctaves = 3
)

// layTerrain fills each column with stone from a noise-driven surface height
// down to the bottom row. Every column keeps at least its bottom cell.
func (w *World) layTerrain(seed int64) {
	p := w.cfg.Params
	if !p.Terrain {
		return
	}
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	width, height := w.cells.W, w.cells.H
	for x := 0; x < width; x++ {
		n := noise.Noise1D(float64(x) / float64(width) * p.TerrainScale)
		surface := int(float64(height) * (p.TerrainBase - n*p.TerrainAmplitude))
		surface = min(max(surface, 0), height-1)
		for y := surface; y < height; y++ {
			w.Paint(x, y, material.Stone)
		}
	}
}
