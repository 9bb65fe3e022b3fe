package blocks

import "iter"

// Piece is the falling piece under player control. Origin is the grid
// position of the top-left cell of Shape.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Color  Color
	Origin Point
}

// Clone returns a deep copy of p.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	out := *p
	out.Shape = p.Shape.Clone()
	return &out
}

// Cells iterates the grid coordinates covered by p.
func (p *Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for c := range p.Shape.Cells() {
			if !yield(Point{X: p.Origin.X + c.X, Y: p.Origin.Y + c.Y}) {
				return
			}
		}
	}
}
