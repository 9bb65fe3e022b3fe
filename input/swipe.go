package input

import (
	"math"

	"github.com/plus3/blockfall/blocks"
)

// DefaultSwipeThreshold is the distance in pixels below which a touch
// counts as a tap.
const DefaultSwipeThreshold = 30

// ClassifySwipe maps a finished touch gesture to a command. A tap rotates,
// a mostly horizontal swipe moves sideways and a downward swipe soft drops.
// Upward swipes are ignored.
func ClassifySwipe(dx, dy, threshold float64) (blocks.Command, bool) {
	if math.Hypot(dx, dy) < threshold {
		return blocks.RotateCW, true
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return blocks.MoveLeft, true
		}
		return blocks.MoveRight, true
	}
	if dy > 0 {
		return blocks.SoftDrop, true
	}
	return 0, false
}

// Touches tracks active touches by id from start to release.
type Touches struct {
	Threshold float64

	starts map[int][2]float64
}

func NewTouches() *Touches {
	return &Touches{
		Threshold: DefaultSwipeThreshold,
		starts:    make(map[int][2]float64),
	}
}

// Begin records where touch id went down.
func (t *Touches) Begin(id int, x, y float64) {
	t.starts[id] = [2]float64{x, y}
}

// End classifies touch id released at (x, y). Unknown ids are ignored.
func (t *Touches) End(id int, x, y float64) (blocks.Command, bool) {
	start, ok := t.starts[id]
	if !ok {
		return 0, false
	}
	delete(t.starts, id)
	return ClassifySwipe(x-start[0], y-start[1], t.Threshold)
}

// Active returns the number of touches in progress.
func (t *Touches) Active() int {
	return len(t.starts)
}
