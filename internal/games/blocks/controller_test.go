package blocks

import (
	"testing"
	"time"
)

// scriptedSource returns a fixed sequence of shape indexes, cycling.
type scriptedSource struct {
	seq  []int
	next int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.seq[s.next%len(s.seq)] % n
	s.next++
	return v
}

// newTestController builds a default board that always spawns shape index
// idx at column col.
func newTestController(t *testing.T, idx, col int) *Controller {
	t.Helper()
	opts := DefaultOptions(fixedSource(idx))
	opts.SpawnColumn = col
	c, err := NewController(opts)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

// dropToFloor ticks gravity until the active piece locks.
func dropToFloor(t *testing.T, c *Controller) LockResult {
	t.Helper()
	for i := 0; i < c.Geometry().Height+1; i++ {
		if res, locked := c.Tick(DefaultGravity); locked {
			return res
		}
	}
	t.Fatal("piece never locked")
	return LockResult{}
}

func TestNewControllerRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"nil source", func(o *Options) { o.Source = nil }},
		{"zero gravity", func(o *Options) { o.Gravity = 0 }},
		{"narrow board", func(o *Options) { o.Geometry.Width = 3 }},
		{"border too wide", func(o *Options) { o.Geometry.CellBorder = 15 }},
		{"spawn past right edge", func(o *Options) { o.SpawnColumn = 9 }},
		{"negative spawn column", func(o *Options) { o.SpawnColumn = -1 }},
		{"spawn too low", func(o *Options) { o.SpawnRow = 17 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(fixedSource(0))
			tt.modify(&opts)
			if _, err := NewController(opts); err == nil {
				t.Error("NewController() error = nil, expected error")
			}
		})
	}
}

func TestSpawnPosition(t *testing.T) {
	c := newTestController(t, 0, 4)
	p := c.Piece()

	if p.Shape() != ShapeI {
		t.Errorf("Shape() = %s, expected I", p.Shape())
	}
	expected := [4][2]int{{4, 0}, {4, 1}, {4, 2}, {4, 3}}
	if got := gridCells(p); got != expected {
		t.Errorf("cells = %v, expected %v", got, expected)
	}
}

func TestGravityAccumulates(t *testing.T) {
	c := newTestController(t, 0, 4)
	row := func() int { return c.Geometry().Row(c.Piece().Cells()[0].Y) }

	c.Tick(DefaultGravity - time.Millisecond)
	if row() != 0 {
		t.Errorf("row = %d before threshold, expected 0", row())
	}

	c.Tick(time.Millisecond)
	if row() != 1 {
		t.Errorf("row = %d at threshold, expected 1", row())
	}
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", c.Elapsed())
	}

	// A long tick still steps once and keeps the remainder.
	c.Tick(1200 * time.Millisecond)
	if row() != 2 {
		t.Errorf("row = %d after long tick, expected 2", row())
	}
	if c.Elapsed() != 700*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 700ms", c.Elapsed())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	c := newTestController(t, 5, 4)
	c.Tick(200 * time.Millisecond)
	start := c.Piece().Cells()

	c.TogglePause()
	if !c.Paused() {
		t.Fatal("Paused() = false after toggle")
	}

	if _, locked := c.Tick(10 * time.Second); locked {
		t.Error("Tick() locked while paused")
	}
	if c.Move(DirLeft) {
		t.Error("Move() = true while paused")
	}
	if c.Rotate() {
		t.Error("Rotate() = true while paused")
	}
	if c.Piece().Cells() != start {
		t.Error("piece changed while paused")
	}
	if c.Elapsed() != 200*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 200ms", c.Elapsed())
	}

	c.TogglePause()
	c.Tick(300 * time.Millisecond)
	if c.Piece().Cells() == start {
		t.Error("gravity did not resume after unpause")
	}
}

func TestSoftDropNeverLocks(t *testing.T) {
	c := newTestController(t, 0, 4)
	for c.Move(DirDown) {
	}

	if got := c.Geometry().Row(c.Piece().Cells()[3].Y); got != c.Geometry().Height-1 {
		t.Errorf("bottom row = %d, expected %d", got, c.Geometry().Height-1)
	}
	if len(c.PlacedCells()) != 0 {
		t.Errorf("PlacedCells() = %d, expected 0", len(c.PlacedCells()))
	}
}

func TestLockSequence(t *testing.T) {
	src := &scriptedSource{seq: []int{5, 2}} // T, then O
	opts := DefaultOptions(src)
	c, err := NewController(opts)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	res := dropToFloor(t, c)

	if res.Locked != ShapeT {
		t.Errorf("Locked = %s, expected T", res.Locked)
	}
	if res.LinesCleared != 0 {
		t.Errorf("LinesCleared = %d, expected 0", res.LinesCleared)
	}
	if res.NewPiece.Shape() != ShapeO || c.Piece().Shape() != ShapeO {
		t.Errorf("new piece = %s, expected O", c.Piece().Shape())
	}
	if c.Score().Count(ShapeT) != 1 || c.Score().Count(ShapeO) != 0 {
		t.Errorf("counts T=%d O=%d, expected 1 and 0", c.Score().Count(ShapeT), c.Score().Count(ShapeO))
	}
	if len(c.PlacedCells()) != 4 {
		t.Errorf("PlacedCells() = %d, expected 4", len(c.PlacedCells()))
	}
	if res.GameOver || c.Over() {
		t.Error("game over after first lock")
	}
}

func TestLockClearsSingleLine(t *testing.T) {
	c := newTestController(t, 0, 0)
	fillRow(c.board, c.Geometry().Height-1, 0)

	res := dropToFloor(t, c)

	if res.LinesCleared != 1 {
		t.Errorf("LinesCleared = %d, expected 1", res.LinesCleared)
	}
	score := c.Score()
	if score.Points != 100 || score.Lines != 1 {
		t.Errorf("score = %d points %d lines, expected 100 and 1", score.Points, score.Lines)
	}

	// The three I cells above the cleared row dropped by one.
	placed := c.PlacedCells()
	if len(placed) != 3 {
		t.Fatalf("PlacedCells() = %d, expected 3", len(placed))
	}
	for i, cell := range placed {
		geo := c.Geometry()
		if geo.Column(cell.X) != 0 || geo.Row(cell.Y) != 17+i {
			t.Errorf("cell %d at (%d, %d), expected (0, %d)", i, geo.Column(cell.X), geo.Row(cell.Y), 17+i)
		}
	}
}

func TestLockClearsFourLines(t *testing.T) {
	c := newTestController(t, 0, 0)
	h := c.Geometry().Height
	for row := h - 4; row < h; row++ {
		fillRow(c.board, row, 0)
	}

	res := dropToFloor(t, c)

	if res.LinesCleared != 4 {
		t.Errorf("LinesCleared = %d, expected 4", res.LinesCleared)
	}
	if c.Score().Points != 1000 {
		t.Errorf("Points = %d, expected 1000", c.Score().Points)
	}
	if len(c.PlacedCells()) != 0 {
		t.Errorf("PlacedCells() = %d, expected 0", len(c.PlacedCells()))
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	c := newTestController(t, 0, 0)
	for row := 4; row < c.Geometry().Height; row++ {
		place(c.board, 0, row)
	}

	res, locked := c.Tick(DefaultGravity)
	if !locked {
		t.Fatal("Tick() did not lock a piece resting on the stack")
	}
	if !res.GameOver || !c.Over() {
		t.Fatal("game not over after spawn overlapped the stack")
	}

	if _, locked := c.Tick(time.Minute); locked {
		t.Error("Tick() locked after game over")
	}
	if c.Move(DirRight) {
		t.Error("Move() = true after game over")
	}
	c.TogglePause()
	if c.Paused() {
		t.Error("TogglePause() paused a finished game")
	}
	if got, expected := len(c.RenderModel()), len(c.PlacedCells()); got != expected {
		t.Errorf("RenderModel() = %d cells, expected %d", got, expected)
	}

	c.Reset()
	if c.Over() || len(c.PlacedCells()) != 0 || c.Score().Pieces() != 0 {
		t.Error("Reset() did not start a fresh game")
	}
}

func TestRenderModel(t *testing.T) {
	c := newTestController(t, 2, 4)
	place(c.board, 0, 19)

	model := c.RenderModel()
	if len(model) != 5 {
		t.Fatalf("RenderModel() = %d cells, expected 5", len(model))
	}
	if model[0].Color != c.PlacedCells()[0].Color {
		t.Error("placed cells should come first")
	}
	for _, rc := range model {
		if rc.Size != c.Geometry().CellExtent() {
			t.Errorf("Size = %d, expected %d", rc.Size, c.Geometry().CellExtent())
		}
	}
	for i, cell := range c.Piece().Cells() {
		rc := model[1+i]
		if rc.X != cell.X || rc.Y != cell.Y || rc.Color != ShapeO.Color() {
			t.Errorf("piece cell %d = %+v, expected (%d, %d) %v", i, rc, cell.X, cell.Y, ShapeO.Color())
		}
	}
}
