package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Shape tags the seven tetromino layouts.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// Shapes lists every shape in declaration order.
var Shapes = [ShapeCount]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// spawnOrder maps a random index in [0, ShapeCount) to a shape.
var spawnOrder = [ShapeCount]Shape{ShapeI, ShapeL, ShapeO, ShapeJ, ShapeS, ShapeT, ShapeZ}

// String returns the single-letter shape name.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the color cells of this shape are drawn with.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorGray
	case ShapeJ:
		return core.ColorOrange
	case ShapeL:
		return core.ColorYellow
	case ShapeO:
		return core.ColorMagenta
	case ShapeS:
		return core.ColorBlue
	case ShapeT:
		return core.ColorRed
	case ShapeZ:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// offset is a cell position relative to the spawn anchor, in cells.
type offset struct {
	dx, dy int
}

// layout is the fixed spawn arrangement of a shape.
type layout struct {
	cells [4]offset
	pivot int // -1 when the shape never rotates
}

// layout returns the spawn arrangement for s. Panics on an unknown shape.
func (s Shape) layout() layout {
	switch s {
	case ShapeI:
		return layout{cells: [4]offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, pivot: 1}
	case ShapeJ:
		return layout{cells: [4]offset{{0, 0}, {1, 0}, {0, 1}, {0, 2}}, pivot: 2}
	case ShapeL:
		return layout{cells: [4]offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}}, pivot: 2}
	case ShapeO:
		return layout{cells: [4]offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, pivot: -1}
	case ShapeS:
		return layout{cells: [4]offset{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, pivot: 1}
	case ShapeT:
		return layout{cells: [4]offset{{0, 0}, {0, 1}, {1, 1}, {0, 2}}, pivot: 1}
	case ShapeZ:
		return layout{cells: [4]offset{{1, 0}, {0, 1}, {1, 1}, {0, 2}}, pivot: 1}
	default:
		panic(fmt.Sprintf("blocks: unknown shape %d", int(s)))
	}
}
