package blocks

import "testing"

// gridCells returns the (column, row) of every cell of p.
func gridCells(p Piece) [4][2]int {
	var out [4][2]int
	for i, c := range p.Cells() {
		out[i] = [2]int{p.geo.Column(c.X), p.geo.Row(c.Y)}
	}
	return out
}

func TestNewPieceLayouts(t *testing.T) {
	geo := DefaultGeometry()

	tests := []struct {
		shape    Shape
		expected [4][2]int
		pivot    int
		hasPivot bool
	}{
		{ShapeI, [4][2]int{{4, 0}, {4, 1}, {4, 2}, {4, 3}}, 1, true},
		{ShapeL, [4][2]int{{4, 0}, {5, 0}, {5, 1}, {5, 2}}, 2, true},
		{ShapeJ, [4][2]int{{4, 0}, {5, 0}, {4, 1}, {4, 2}}, 2, true},
		{ShapeO, [4][2]int{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, 0, false},
		{ShapeS, [4][2]int{{4, 0}, {4, 1}, {5, 1}, {5, 2}}, 1, true},
		{ShapeT, [4][2]int{{4, 0}, {4, 1}, {5, 1}, {4, 2}}, 1, true},
		{ShapeZ, [4][2]int{{5, 0}, {4, 1}, {5, 1}, {4, 2}}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := NewPiece(tt.shape, geo.Span(4), 0, geo)

			if got := gridCells(p); got != tt.expected {
				t.Errorf("cells = %v, expected %v", got, tt.expected)
			}
			pivot, ok := p.Pivot()
			if ok != tt.hasPivot || pivot != tt.pivot {
				t.Errorf("Pivot() = (%d, %v), expected (%d, %v)", pivot, ok, tt.pivot, tt.hasPivot)
			}
			for _, c := range p.Cells() {
				if c.Color != tt.shape.Color() {
					t.Errorf("cell color = %v, expected %v", c.Color, tt.shape.Color())
				}
				if (c.X-geo.CellBorder)%geo.CellSize != 0 || (c.Y-geo.CellBorder)%geo.CellSize != 0 {
					t.Errorf("cell (%d, %d) is not grid aligned", c.X, c.Y)
				}
			}
		})
	}
}

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func TestRandomPieceMapping(t *testing.T) {
	geo := DefaultGeometry()
	expected := []Shape{ShapeI, ShapeL, ShapeO, ShapeJ, ShapeS, ShapeT, ShapeZ}

	for i, want := range expected {
		p := RandomPiece(fixedSource(i), 0, 0, geo)
		if p.Shape() != want {
			t.Errorf("RandomPiece(%d) = %s, expected %s", i, p.Shape(), want)
		}
	}
}

func TestRotationHasOrderFour(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)

	for _, shape := range []Shape{ShapeI, ShapeJ, ShapeL, ShapeS, ShapeT, ShapeZ} {
		t.Run(shape.String(), func(t *testing.T) {
			p := NewPiece(shape, geo.Span(4), geo.Span(8), geo)
			start := p.Cells()

			for i := 1; i <= 4; i++ {
				if !p.TryRotate(b) {
					t.Fatalf("rotation %d rejected in open space", i)
				}
				if i < 4 && p.Cells() == start {
					t.Errorf("rotation %d returned to the start position", i)
				}
			}
			if p.Cells() != start {
				t.Errorf("after 4 rotations cells = %v, expected %v", p.Cells(), start)
			}
		})
	}
}

func TestRotationKeepsPivot(t *testing.T) {
	geo := DefaultGeometry()
	p := NewPiece(ShapeT, geo.Span(4), geo.Span(8), geo)
	idx, _ := p.Pivot()
	before := p.Cells()[idx]

	r := p.Rotated()
	if after := r.Cells()[idx]; !after.SamePosition(before) {
		t.Errorf("pivot moved from (%d, %d) to (%d, %d)", before.X, before.Y, after.X, after.Y)
	}
}

func TestORotationIsNoop(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)
	p := NewPiece(ShapeO, geo.Span(4), geo.Span(8), geo)
	start := p.Cells()

	if p.TryRotate(b) {
		t.Error("TryRotate() = true for O, expected false")
	}
	if p.Cells() != start {
		t.Errorf("O cells changed to %v", p.Cells())
	}
	if r := p.Rotated(); r.Cells() != start {
		t.Errorf("Rotated() changed O cells to %v", r.Cells())
	}
}

func TestIRotatesToHorizontalThroughPivot(t *testing.T) {
	geo := DefaultGeometry()

	// Next to the left wall the far end lands outside the board.
	p := NewPiece(ShapeI, geo.Span(1), 0, geo)
	expected := [4][2]int{{2, 1}, {1, 1}, {0, 1}, {-1, 1}}
	if got := gridCells(p.Rotated()); got != expected {
		t.Errorf("Rotated() cells = %v, expected %v", got, expected)
	}
	start := p.Cells()
	if p.TryRotate(NewBoard(geo)) {
		t.Error("TryRotate() = true with a cell past the left wall")
	}
	if p.Cells() != start {
		t.Error("rejected rotation changed the piece")
	}

	// One column further right it fits.
	p = NewPiece(ShapeI, geo.Span(2), 0, geo)
	if !p.TryRotate(NewBoard(geo)) {
		t.Fatal("TryRotate() = false, expected true")
	}
	expected = [4][2]int{{3, 1}, {2, 1}, {1, 1}, {0, 1}}
	if got := gridCells(p); got != expected {
		t.Errorf("cells = %v, expected %v", got, expected)
	}
}

func TestIRotationCannotLeaveTheTop(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)
	p := NewPiece(ShapeI, geo.Span(4), 0, geo)

	if !p.TryRotate(b) {
		t.Fatal("first rotation rejected")
	}
	// The second quarter turn would put the far end on row -1.
	if p.TryRotate(b) {
		t.Errorf("second rotation accepted, cells = %v", gridCells(p))
	}
}

func TestRotationBlockedByPlacedCell(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)
	b.insertCell(newCell(geo, geo.Span(5), geo.Span(9), 0))

	p := NewPiece(ShapeI, geo.Span(4), geo.Span(8), geo)
	start := p.Cells()
	if p.TryRotate(b) {
		t.Error("TryRotate() = true into an occupied cell")
	}
	if p.Cells() != start {
		t.Error("rejected rotation changed the piece")
	}
}

func TestTryMoveWalls(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)

	tests := []struct {
		name     string
		col, row int
		dir      Direction
		expected bool
	}{
		{"left wall", 0, 0, DirLeft, false},
		{"right wall", geo.Width - 1, 0, DirRight, false},
		{"floor", 4, geo.Height - 4, DirDown, false},
		{"open left", 4, 0, DirLeft, true},
		{"open right", 4, 0, DirRight, true},
		{"open down", 4, 0, DirDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiece(ShapeI, geo.Span(tt.col), geo.Span(tt.row), geo)
			start := p.Cells()

			if got := p.TryMove(tt.dir, b); got != tt.expected {
				t.Errorf("TryMove(%s) = %v, expected %v", tt.dir, got, tt.expected)
			}
			if !tt.expected && p.Cells() != start {
				t.Error("rejected move changed the piece")
			}
			if !p.Valid(b) {
				t.Error("piece left the board")
			}
		})
	}
}

func TestTryMoveBlockedByPlacedCell(t *testing.T) {
	geo := DefaultGeometry()
	b := NewBoard(geo)
	b.Insert(NewPiece(ShapeO, geo.Span(4), geo.Span(4), geo))

	p := NewPiece(ShapeI, geo.Span(4), 0, geo)
	if p.TryMove(DirDown, b) {
		t.Error("TryMove(down) = true onto a placed cell")
	}
	if !p.CanMove(DirLeft, b) {
		t.Error("CanMove(left) = false in open space")
	}
}

func TestMoveIsUnchecked(t *testing.T) {
	geo := DefaultGeometry()
	p := NewPiece(ShapeI, 0, 0, geo)
	p.Move(DirLeft)

	if p.Valid(NewBoard(geo)) {
		t.Error("piece moved past the wall should be invalid")
	}
	if col := geo.Column(p.Cells()[0].X); col != -1 {
		t.Errorf("column = %d, expected -1", col)
	}
}
