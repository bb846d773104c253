package model

import (
	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.
	noiseBeta   = 2.
	noiseOctave = 3

	// noiseScale spreads the lattice so neighboring cells sample correlated values
	noiseScale = 0.15
)

// SeedNoise brings to life every cell whose Perlin noise value exceeds threshold.
// The field is fully determined by seed.
func SeedNoise(g *Grid, seed int64, threshold float64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for row := range g.rows {
		for col := range g.cols {
			// half-cell offset keeps samples off the lattice points, where Perlin noise is always 0
			v := p.Noise2D((float64(col)+0.5)*noiseScale, (float64(row)+0.5)*noiseScale)
			if v > threshold {
				g.cells[row*g.cols+col] = true
			}
		}
	}
}
