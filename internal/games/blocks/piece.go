package blocks

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Piece is the falling tetromino: exactly four cells, a shape tag and an
// optional pivot cell used for rotation.
type Piece struct {
	shape Shape
	cells [4]Cell
	pivot int // index into cells, -1 for shapes that never rotate
	geo   Geometry
}

// NewPiece builds shape with its spawn layout anchored at grid-aligned (x, y).
func NewPiece(shape Shape, x, y int, geo Geometry) Piece {
	l := shape.layout()
	p := Piece{
		shape: shape,
		pivot: l.pivot,
		geo:   geo,
	}
	color := shape.Color()
	for i, off := range l.cells {
		p.cells[i] = newCell(geo, x+geo.Span(off.dx), y+geo.Span(off.dy), color)
	}
	return p
}

// RandomPiece picks one of the seven shapes uniformly from src and builds it
// at (x, y).
func RandomPiece(src Source, x, y int, geo Geometry) Piece {
	return NewPiece(spawnOrder[src.Intn(ShapeCount)], x, y, geo)
}

// Shape returns the piece's shape tag.
func (p Piece) Shape() Shape {
	return p.shape
}

// Cells returns a copy of the piece's four cells.
func (p Piece) Cells() [4]Cell {
	return p.cells
}

// Pivot returns the index of the rotation cell, if the shape has one.
func (p Piece) Pivot() (int, bool) {
	if p.pivot < 0 {
		return 0, false
	}
	return p.pivot, true
}

// Move translates every cell one span in dir without checking validity.
func (p *Piece) Move(dir Direction) {
	for i := range p.cells {
		p.cells[i] = p.cells[i].moved(p.geo, dir)
	}
}

// CanMove reports whether every cell would stay valid after moving in dir.
func (p Piece) CanMove(dir Direction, b *Board) bool {
	for _, c := range p.cells {
		if !c.moved(p.geo, dir).Valid(b) {
			return false
		}
	}
	return true
}

// TryMove moves the piece only if the whole move is valid.
// Returns true if the piece moved.
func (p *Piece) TryMove(dir Direction, b *Board) bool {
	if !p.CanMove(dir, b) {
		return false
	}
	p.Move(dir)
	return true
}

// TryRotate replaces the piece with its rotation only if all four rotated
// cells are valid. Returns true if the piece changed.
func (p *Piece) TryRotate(b *Board) bool {
	if p.pivot < 0 {
		return false
	}
	rotated := p.Rotated()
	if !rotated.Valid(b) {
		return false
	}
	*p = rotated
	return true
}

// Valid reports whether all four cells are inside the board and free.
func (p Piece) Valid(b *Board) bool {
	for _, c := range p.cells {
		if !c.Valid(b) {
			return false
		}
	}
	return true
}
