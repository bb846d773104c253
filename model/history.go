package model

// DefaultHistorySize is how many past generations History remembers
const DefaultHistorySize = 5

// History remembers recent grid states to detect still lifes and short oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History holding up to size states; size below 1 uses DefaultHistorySize
func NewHistory(size int) *History {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds the current state of g and drops the oldest entry once full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether g matches a recorded state and how many generations back it was seen.
// A period of 1 means a still life.
func (h *History) Repeats(g *Grid) (period int, ok bool) {
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Extinct reports whether no cell is alive
func Extinct(g *Grid) bool {
	return g.Population() == 0
}
