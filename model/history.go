package model

// historySize is how many recent generations are kept for cycle detection
const historySize = 5

// History remembers the hashes of recent generations
type History struct {
	hashes []string
}

// Record adds the board's current state and drops the oldest beyond historySize
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether b repeats one of the last three recorded states,
// i.e. the board is static or oscillating with period 3 or less.
func (h *History) IsStagnant(b *Board) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := b.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
