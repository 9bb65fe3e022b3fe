package blocks

// Collides reports whether p, displaced by (dx, dy), overlaps an occupied
// cell of g or leaves the grid through a wall or the floor. Every move,
// gravity step and rotation is checked here.
func Collides(p *Piece, g *Grid, dx, dy int) bool {
	for c := range p.Cells() {
		if g.IsOccupied(c.X+dx, c.Y+dy) {
			return true
		}
	}
	return false
}

// AttemptShift moves p by (dx, dy) if the destination is free and reports
// whether it moved. A rejected shift leaves p untouched.
func AttemptShift(p *Piece, g *Grid, dx, dy int) bool {
	if p == nil || Collides(p, g, dx, dy) {
		return false
	}
	p.Origin.X += dx
	p.Origin.Y += dy
	return true
}

// Rotate turns p clockwise in place if the rotated shape fits at the same
// origin. There is no kick search: a rotation blocked by a wall or the
// stack is simply rejected.
func Rotate(p *Piece, g *Grid) bool {
	if p == nil {
		return false
	}
	candidate := Piece{
		Kind:   p.Kind,
		Shape:  p.Shape.Rotated(),
		Color:  p.Color,
		Origin: p.Origin,
	}
	if Collides(&candidate, g, 0, 0) {
		return false
	}
	p.Shape = candidate.Shape
	return true
}

// Lock writes p's cells into g. Cells above the top row are discarded.
func Lock(p *Piece, g *Grid) {
	for c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		g.SetCell(c.X, c.Y, p.Color)
	}
}

// ClearFullRows removes every full row, letting the rows above fall, and
// returns how many were removed.
func ClearFullRows(g *Grid) int {
	cleared := 0
	for y := g.Height() - 1; y >= 0; {
		if g.RowIsFull(y) {
			g.RemoveRowAndInsertEmptyAtTop(y)
			cleared++
			// the row that fell into y has not been examined yet
			continue
		}
		y--
	}
	return cleared
}

// DropDistance returns how many rows p can fall before it rests.
func DropDistance(p *Piece, g *Grid) int {
	if p == nil {
		return 0
	}
	limit := g.Height() + p.Shape.Rows()
	d := 0
	for d < limit && !Collides(p, g, 0, d+1) {
		d++
	}
	return d
}
