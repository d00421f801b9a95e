package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// RenderCell is a colored square handed to a renderer. X and Y are the
// cell's stored position and Size is its drawn extent.
type RenderCell struct {
	X, Y  int
	Size  int
	Color core.Color
}

// RenderModel describes everything to draw: settled cells first, then the
// active piece. Nothing is drawn for the piece once the game is over.
func (c *Controller) RenderModel() []RenderCell {
	size := c.geo.CellExtent()
	placed := c.board.Cells()

	out := make([]RenderCell, 0, len(placed)+4)
	for _, cell := range placed {
		out = append(out, RenderCell{X: cell.X, Y: cell.Y, Size: size, Color: cell.Color})
	}
	if c.over {
		return out
	}
	for _, cell := range c.piece.cells {
		out = append(out, RenderCell{X: cell.X, Y: cell.Y, Size: size, Color: cell.Color})
	}
	return out
}
