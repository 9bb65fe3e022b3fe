package blocks

import "iter"

// Color is an opaque block color token. The zero value is Empty.
type Color uint8

const (
	Empty Color = iota
	Cyan
	Yellow
	Purple
	Green
	Red
	Blue
	Orange
)

var colorNames = [...]string{
	Empty:  "empty",
	Cyan:   "cyan",
	Yellow: "yellow",
	Purple: "purple",
	Green:  "green",
	Red:    "red",
	Blue:   "blue",
	Orange: "orange",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Grid is a fixed-size matrix of placed blocks. Row 0 is the top row.
type Grid struct {
	width  int
	height int
	cells  [][]Color
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	cells := make([][]Color, height)
	for y := range cells {
		cells[y] = make([]Color, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the color at (x, y), or Empty for coordinates outside the grid.
func (g *Grid) At(x, y int) Color {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// IsOccupied reports whether a block may not move into (x, y).
// The side walls and the floor count as occupied; the space above the
// top row is always clear so pieces can spawn partially hidden.
func (g *Grid) IsOccupied(x, y int) bool {
	if x < 0 || x >= g.width || y >= g.height {
		return true
	}
	if y < 0 {
		return false
	}
	return g.cells[y][x] != Empty
}

// SetCell writes c at (x, y). Writes outside the grid are dropped.
func (g *Grid) SetCell(x, y int, c Color) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// RowIsFull reports whether every cell in row is non-empty.
func (g *Grid) RowIsFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	for _, c := range g.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RemoveRowAndInsertEmptyAtTop deletes row and shifts every row above it
// down by one, leaving an empty row at index 0.
func (g *Grid) RemoveRowAndInsertEmptyAtTop(row int) {
	if row < 0 || row >= g.height {
		return
	}
	removed := g.cells[row]
	copy(g.cells[1:row+1], g.cells[:row])
	clear(removed)
	g.cells[0] = removed
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// Rows iterates the rows from top to bottom. Yielded slices alias the grid
// and must not be modified.
func (g *Grid) Rows() iter.Seq2[int, []Color] {
	return func(yield func(int, []Color) bool) {
		for y, row := range g.cells {
			if !yield(y, row) {
				return
			}
		}
	}
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
