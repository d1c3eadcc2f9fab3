package utils

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Push records a generation hash, keeping only the most recent few
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations, which catches still lifes and period 2 and 3 oscillators
func (h *History) IsStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
