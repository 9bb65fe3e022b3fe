// Package input turns raw key and touch state into game commands. It has no
// dependency on a windowing backend so it can be driven from tests.
package input

// Repeat converts a held key into a stream of discrete presses: one on the
// initial press, then one every Rate seconds once the key has been held for
// longer than Delay.
type Repeat struct {
	Delay float64
	Rate  float64

	held float64
}

// NewRepeat returns a Repeat with the usual 200ms delay and 50ms rate.
func NewRepeat() *Repeat {
	return &Repeat{Delay: 0.2, Rate: 0.05}
}

// Update advances the key by dt seconds and reports whether it fires.
// pressed is true only on the frame the key went down; down is true for
// every frame it is held.
func (r *Repeat) Update(pressed, down bool, dt float64) bool {
	switch {
	case pressed:
		r.held = 0
		return true
	case down:
		r.held += dt
		if r.held > r.Delay {
			r.held -= r.Rate
			return true
		}
		return false
	default:
		r.held = 0
		return false
	}
}

// Reset forgets how long the key has been held.
func (r *Repeat) Reset() {
	r.held = 0
}
