package debugui

// History is a fixed-size ring of samples for ImGui plots.
type History struct {
	samples []float32
	next    int
	filled  bool
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

// Push records v, overwriting the oldest sample once the ring is full.
func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Samples returns the backing ring. Unfilled slots are zero.
func (h *History) Samples() []float32 {
	return h.samples
}

// Average returns the mean of the recorded samples.
func (h *History) Average() float32 {
	n := h.next
	if h.filled {
		n = len(h.samples)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}

// Max returns the largest recorded sample.
func (h *History) Max() float32 {
	var out float32
	for _, v := range h.samples {
		out = max(out, v)
	}
	return out
}
