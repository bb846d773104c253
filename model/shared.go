package model

import "sync"

// Shared guards a Grid for callers that read and advance it from several goroutines.
// Advance holds the write lock for a whole generation so readers never see a partial update.
// A single-goroutine owner, such as the command-line driver, uses Grid directly.
type Shared struct {
	mu   sync.RWMutex
	grid *Grid
}

// NewShared wraps g; the caller must stop using g directly
func NewShared(g *Grid) *Shared {
	return &Shared{grid: g}
}

// SetAlive marks the cell at (row, col) alive under the write lock
func (s *Shared) SetAlive(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SetAlive(row, col)
}

// IsAlive reports whether the cell at (row, col) is alive
func (s *Shared) IsAlive(row, col int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.IsAlive(row, col)
}

// NeighborCount returns the toroidal neighbor count of (row, col)
func (s *Shared) NeighborCount(row, col int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.NeighborCount(row, col)
}

// Advance computes and commits one generation while holding the write lock
func (s *Shared) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Advance()
}

// Render returns the text rendering of the current generation
func (s *Shared) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Render()
}

// Population returns the number of living cells
func (s *Shared) Population() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Population()
}

// Generation returns how many times the grid has been advanced
func (s *Shared) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Generation()
}
