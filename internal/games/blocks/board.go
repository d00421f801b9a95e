package blocks

import "sort"

// boardRow holds the placed cells sharing one y position.
type boardRow struct {
	y     int
	cells []Cell
}

// Board is the set of settled cells, grouped into rows by y.
// Rows are created on first insertion and dropped when cleared.
type Board struct {
	geo  Geometry
	rows []boardRow
}

// NewBoard creates an empty board.
func NewBoard(geo Geometry) *Board {
	return &Board{geo: geo}
}

// Geometry returns the board's dimensions.
func (b *Board) Geometry() Geometry {
	return b.geo
}

// Reset removes every placed cell.
func (b *Board) Reset() {
	b.rows = nil
}

// Occupied reports whether a placed cell sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	for _, row := range b.rows {
		if row.y != y {
			continue
		}
		for _, c := range row.cells {
			if c.X == x {
				return true
			}
		}
		return false
	}
	return false
}

// Insert adds the piece's cells to the board. The piece must be valid
// against this board; the piece itself is not kept.
func (b *Board) Insert(p Piece) {
	for _, c := range p.cells {
		b.insertCell(c)
	}
}

func (b *Board) insertCell(c Cell) {
	for i := range b.rows {
		if b.rows[i].y == c.Y {
			b.rows[i].cells = append(b.rows[i].cells, c)
			return
		}
	}
	b.rows = append(b.rows, boardRow{y: c.Y, cells: []Cell{c}})
}

// FullRows returns the y positions of every full row, bottom first.
func (b *Board) FullRows() []int {
	var full []int
	for _, row := range b.rows {
		if len(row.cells) == b.geo.Width {
			full = append(full, row.y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(full)))
	return full
}

// ClearFullRows removes every full row and drops each remaining row by one
// span for every cleared row beneath it. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	kept := make([]boardRow, 0, len(b.rows)-len(full))
	for _, row := range b.rows {
		if len(row.cells) == b.geo.Width {
			continue
		}

		below := 0
		for _, y := range full {
			if y > row.y {
				below++
			}
		}
		if below > 0 {
			shift := b.geo.Span(below)
			row.y += shift
			for i := range row.cells {
				row.cells[i].Y += shift
			}
		}
		kept = append(kept, row)
	}
	b.rows = kept

	return len(full)
}

// RowLen returns the number of placed cells at y.
func (b *Board) RowLen(y int) int {
	for _, row := range b.rows {
		if row.y == y {
			return len(row.cells)
		}
	}
	return 0
}

// Len returns the total number of placed cells.
func (b *Board) Len() int {
	n := 0
	for _, row := range b.rows {
		n += len(row.cells)
	}
	return n
}

// Cells returns a copy of every placed cell ordered top to bottom, then
// left to right.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.Len())
	for _, row := range b.rows {
		cells = append(cells, row.cells...)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
