package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Rotation is a quarter turn clockwise (y grows downward) about the pivot
// cell, expressed as fixed displacement rules rather than a rotation matrix.
//
// A cell diagonal to the pivot jumps two spans along one axis. A cell that
// shares a row or column with the pivot moves diagonally by its distance
// from the pivot, which is what lets the far end of the I piece travel two
// spans on each axis.

// diagonalRules are keyed by the quadrant the cell sits in.
var diagonalRules = []struct {
	sx, sy int // sign of the cell's offset from the pivot
	dx, dy int // displacement in spans
}{
	{sx: 1, sy: 1, dx: -2, dy: 0},  // right and below
	{sx: 1, sy: -1, dx: 0, dy: 2},  // right and above
	{sx: -1, sy: -1, dx: 2, dy: 0}, // left and above
	{sx: -1, sy: 1, dx: 0, dy: -2}, // left and below
}

// axisRules are keyed by the side of the pivot the cell sits on; the
// displacement is multiplied by the cell's distance in spans.
var axisRules = []struct {
	sx, sy int
	dx, dy int
}{
	{sx: -1, sy: 0, dx: 1, dy: -1}, // left
	{sx: 1, sy: 0, dx: -1, dy: 1},  // right
	{sx: 0, sy: -1, dx: 1, dy: 1},  // above
	{sx: 0, sy: 1, dx: -1, dy: -1}, // below
}

// Rotated returns the rotation candidate for the piece. Shapes without a
// pivot are returned unchanged. The candidate is not validated.
func (p Piece) Rotated() Piece {
	if p.pivot < 0 {
		return p
	}
	origin := p.cells[p.pivot]
	for i := range p.cells {
		if i == p.pivot {
			continue
		}
		p.cells[i] = rotateAbout(p.geo, p.cells[i], origin)
	}
	return p
}

// rotateAbout applies the matching rule to a single cell.
func rotateAbout(geo Geometry, c, origin Cell) Cell {
	ox, oy := c.X-origin.X, c.Y-origin.Y
	sx, sy := sign(ox), sign(oy)

	if sx != 0 && sy != 0 {
		for _, r := range diagonalRules {
			if r.sx == sx && r.sy == sy {
				c.X += geo.Span(r.dx)
				c.Y += geo.Span(r.dy)
				return c
			}
		}
	}

	// One of ox, oy is zero here.
	scale := core.Abs(ox+oy) / geo.CellSize
	for _, r := range axisRules {
		if r.sx == sx && r.sy == sy {
			c.X += geo.Span(r.dx * scale)
			c.Y += geo.Span(r.dy * scale)
			return c
		}
	}
	return c
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
