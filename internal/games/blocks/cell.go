package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Direction is a translation a piece can attempt.
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is one unit square of a piece or of the board.
// Two cells occupy the same place when their X and Y are equal; Color is
// carried only for rendering.
type Cell struct {
	X, Y  int
	Color core.Color
}

// newCell places a cell at grid-aligned (x, y) plus the visual inset.
func newCell(geo Geometry, x, y int, color core.Color) Cell {
	return Cell{
		X:     x + geo.CellBorder,
		Y:     y + geo.CellBorder,
		Color: color,
	}
}

// moved returns the cell translated one span in dir.
func (c Cell) moved(geo Geometry, dir Direction) Cell {
	switch dir {
	case DirDown:
		c.Y += geo.Span(1)
	case DirLeft:
		c.X -= geo.Span(1)
	case DirRight:
		c.X += geo.Span(1)
	}
	return c
}

// SamePosition reports whether two cells occupy the same place.
func (c Cell) SamePosition(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Valid reports whether the cell lies inside the board and does not overlap
// a placed cell.
func (c Cell) Valid(b *Board) bool {
	geo := b.geo
	return c.X >= 0 &&
		c.Y >= 0 &&
		c.X+geo.Span(1) <= geo.Span(geo.Width)+geo.CellBorder &&
		c.Y+geo.Span(1) <= geo.Span(geo.Height)+geo.CellBorder &&
		!b.Occupied(c.X, c.Y)
}
