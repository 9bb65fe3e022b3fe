package testutil

// MockRandom returns queued values from IntN. Once the queue is drained it
// returns 0.
type MockRandom struct {
	IntNResults []int
	intNIndex   int
}

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntNResults: values}
}

// IntN returns the next queued result clamped into [0, n).
func (r *MockRandom) IntN(n int) int {
	if r.intNIndex >= len(r.IntNResults) {
		return 0
	}
	result := r.IntNResults[r.intNIndex]
	r.intNIndex++
	if n > 0 {
		result %= n
	}
	return result
}

// QueueIntN adds values to the result queue.
func (r *MockRandom) QueueIntN(values ...int) {
	r.IntNResults = append(r.IntNResults, values...)
}

// Remaining reports how many queued values have not been returned yet.
func (r *MockRandom) Remaining() int {
	return len(r.IntNResults) - r.intNIndex
}
