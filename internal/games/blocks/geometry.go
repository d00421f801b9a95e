// Package blocks implements the rules of a falling-block puzzle: the active
// piece, the settled board, pivot rotation, collision, line clearing, scoring
// and the gravity-driven controller that sequences them.
//
// All positions are integer spatial units. A cell occupies CellSize units on
// each axis and every stored position carries the CellBorder inset, so the
// inset cancels out in every comparison.
package blocks

import "fmt"

// Geometry describes the board dimensions and the size of a single cell.
type Geometry struct {
	CellSize   int // Spatial units per cell
	CellBorder int // Visual inset added to every cell position
	Width      int // Board width in cells
	Height     int // Board height in cells
}

// DefaultGeometry returns a 10x20 board of 30-unit cells.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:   30,
		CellBorder: 3,
		Width:      10,
		Height:     20,
	}
}

// Span converts a cell count to a spatial offset.
func (g Geometry) Span(n int) int {
	return n * g.CellSize
}

// CellExtent returns the drawn size of a cell after the inset on both sides.
func (g Geometry) CellExtent() int {
	return g.CellSize - 2*g.CellBorder
}

// Column returns the grid column of a stored x position.
func (g Geometry) Column(x int) int {
	return (x - g.CellBorder) / g.CellSize
}

// Row returns the grid row of a stored y position.
func (g Geometry) Row(y int) int {
	return (y - g.CellBorder) / g.CellSize
}

// Validate reports whether the geometry can host a game.
func (g Geometry) Validate() error {
	if g.Width < 4 {
		return fmt.Errorf("blocks: board width must be at least 4 cells, got %d", g.Width)
	}
	if g.Height < 4 {
		return fmt.Errorf("blocks: board height must be at least 4 cells, got %d", g.Height)
	}
	if g.CellSize <= 0 {
		return fmt.Errorf("blocks: cell size must be positive, got %d", g.CellSize)
	}
	if g.CellBorder < 0 || 2*g.CellBorder >= g.CellSize {
		return fmt.Errorf("blocks: cell border %d does not fit cell size %d", g.CellBorder, g.CellSize)
	}
	return nil
}
