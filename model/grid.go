package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus/rules"
)

const (
	cellAlive = 'O'
	cellDead  = '.'
)

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// offsets are the eight neighbor displacements as (row, col) pairs
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size toroidal Game of Life board
type Grid struct {
	rows       int
	cols       int
	cells      []bool // row-major, index row*cols + col
	next       []bool // scratch buffer for Advance
	generation int
	workers    int
}

// NewGrid creates a grid with all cells dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	if cols > math.MaxInt/rows {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d overflows cell count", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]bool, rows*cols),
		next:    make([]bool, rows*cols),
		workers: 1,
	}, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns how many times the grid has been advanced
func (g *Grid) Generation() int {
	return g.generation
}

// SetWorkers sets how many goroutines Advance uses; values below 1 mean sequential
func (g *Grid) SetWorkers(n int) {
	g.workers = max(1, n)
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	clear(g.cells)
	g.generation = 0
}

func (g *Grid) check(op string, row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.rows, g.cols)
	}
	return nil
}

// wrap maps any coordinate onto the torus
func (g *Grid) wrap(row, col int) int {
	r := (row%g.rows + g.rows) % g.rows
	c := (col%g.cols + g.cols) % g.cols
	return r*g.cols + c
}

// SetAlive marks the cell at (row, col) alive
func (g *Grid) SetAlive(row, col int) error {
	if err := g.check("SetAlive", row, col); err != nil {
		return err
	}
	g.cells[row*g.cols+col] = true
	return nil
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if err := g.check("IsAlive", row, col); err != nil {
		return false, err
	}
	return g.cells[row*g.cols+col], nil
}

// NeighborCount returns the number of live cells among the eight toroidal neighbors of (row, col)
func (g *Grid) NeighborCount(row, col int) (int, error) {
	if err := g.check("NeighborCount", row, col); err != nil {
		return 0, err
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) (count int) {
	for _, d := range offsets {
		if g.cells[g.wrap(row+d[0], col+d[1])] {
			count++
		}
	}
	return
}

// Advance moves the grid to the next generation.
// Every cell is computed from the current state into the scratch buffer before the buffers swap.
func (g *Grid) Advance() {
	if g.workers <= 1 || g.rows < 2 {
		g.computeRows(0, g.rows)
	} else {
		g.computeParallel()
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

func (g *Grid) computeRows(startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.cols {
			idx := row*g.cols + col
			g.next[idx] = rules.Next(g.cells[idx], g.neighbors(row, col))
		}
	}
}

func (g *Grid) computeParallel() {
	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			g.computeRows(startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait only joins them
	_ = eg.Wait()
}

// Population returns the number of living cells
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current cell state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Render returns the grid as text, one line per row, 'O' for alive and '.' for dead
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := range g.rows {
		for _, alive := range g.cells[row*g.cols : (row+1)*g.cols] {
			if alive {
				sb.WriteByte(cellAlive)
			} else {
				sb.WriteByte(cellDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) String() string {
	return g.Render()
}
