package blocks

import "iter"

// Point is a cell coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

// Shape is a rectangular occupancy matrix in a piece's local frame,
// indexed as shape[row][col].
type Shape [][]bool

func (s Shape) Rows() int { return len(s) }

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a copy that shares no backing arrays with s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Rotated returns s turned 90 degrees clockwise. The result has the
// dimensions of s transposed; s is not modified.
func (s Shape) Rotated() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for c := range cols {
		out[c] = make([]bool, rows)
		for r := range rows {
			out[c][r] = s[rows-1-r][c]
		}
	}
	return out
}

// Equal reports whether s and other have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Cells iterates the occupied cells of s in local coordinates.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r, row := range s {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: c, Y: r}) {
					return
				}
			}
		}
	}
}
