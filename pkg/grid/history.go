package grid

// History remembers the hashes of recent generations so callers can tell
// when a pattern has settled into a still life or a short oscillator.
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps at most depth generations. Depth below 1 is raised to 1.
func NewHistory(depth int) *History {
	return &History{depth: max(depth, 1)}
}

// Record stores the hash of g and reports whether the same state was seen
// within the retained window.
func (h *History) Record(g *Grid) bool {
	sum := g.Hash()
	repeated := false
	for _, prev := range h.hashes {
		if prev == sum {
			repeated = true
			break
		}
	}
	h.hashes = append(h.hashes, sum)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[len(h.hashes)-h.depth:]
	}
	return repeated
}

// Reset forgets every recorded generation.
func (h *History) Reset() { h.hashes = h.hashes[:0] }

// Len returns the number of retained generations.
func (h *History) Len() int { return len(h.hashes) }
