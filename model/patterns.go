package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	blinker = [][]bool{
		{true, true, true},
	}
	glider = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	block = [][]bool{
		{true, true},
		{true, true},
	}
)

// stamp sets the live cells of pattern with its top-left corner at (row, col), wrapping around the edges
func stamp(g *Grid, op string, row, col int, pattern [][]bool) error {
	if err := g.check(op, row, col); err != nil {
		return err
	}
	for dr, line := range pattern {
		for dc, alive := range line {
			if alive {
				g.cells[g.wrap(row+dr, col+dc)] = true
			}
		}
	}
	return nil
}

// AddBlinker adds a horizontal period-2 oscillator starting at (row, col)
func AddBlinker(g *Grid, row, col int) error {
	return stamp(g, "AddBlinker", row, col, blinker)
}

// AddGlider adds a south-east travelling glider anchored at (row, col)
func AddGlider(g *Grid, row, col int) error {
	return stamp(g, "AddGlider", row, col, glider)
}

// AddBlock adds a 2x2 still life anchored at (row, col)
func AddBlock(g *Grid, row, col int) error {
	return stamp(g, "AddBlock", row, col, block)
}

// Randomize brings cells to life with the given probability, deterministically for a seed.
// Cells that are already alive stay alive.
func Randomize(g *Grid, seed int64, density float64) {
	density = min(1, max(0, density))
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = true
		}
	}
}

// ApplyPattern stamps a pattern by name: blinker, glider or block
func ApplyPattern(g *Grid, kind string, row, col int) error {
	switch kind {
	case "blinker":
		return AddBlinker(g, row, col)
	case "glider":
		return AddGlider(g, row, col)
	case "block":
		return AddBlock(g, row, col)
	}
	return errors.Errorf("[ApplyPattern] unknown pattern %q", kind)
}

// IsPattern reports whether ApplyPattern knows kind
func IsPattern(kind string) bool {
	switch kind {
	case "blinker", "glider", "block":
		return true
	}
	return false
}
