package blocks

import (
	"errors"
	"fmt"
	"time"
)

// DefaultGravity is the time between gravity steps.
const DefaultGravity = 500 * time.Millisecond

// Options configures a Controller.
type Options struct {
	Geometry    Geometry
	Gravity     time.Duration // Time between gravity steps
	SpawnColumn int           // Grid column new pieces are anchored at
	SpawnRow    int           // Grid row new pieces are anchored at
	Source      Source        // Shape selection; required
}

// DefaultOptions returns options for the default board, spawning pieces
// near the top center.
func DefaultOptions(src Source) Options {
	geo := DefaultGeometry()
	return Options{
		Geometry:    geo,
		Gravity:     DefaultGravity,
		SpawnColumn: geo.Width/2 - 1,
		SpawnRow:    0,
		Source:      src,
	}
}

// LockResult describes a piece settling into the board.
type LockResult struct {
	Locked       Shape // Shape of the piece that settled
	LinesCleared int   // Rows removed by this lock
	NewPiece     Piece // Piece spawned to replace it
	GameOver     bool  // The new piece had no room to spawn
}

// Controller owns the board, the active piece and the score, and sequences
// gravity, locking, line clearing and respawning. It is not safe for
// concurrent use; the host drives it from a single loop.
type Controller struct {
	geo     Geometry
	gravity time.Duration
	spawnX  int
	spawnY  int
	src     Source

	board *Board
	piece Piece
	score Score

	elapsed time.Duration
	paused  bool
	over    bool
}

// NewController validates opts and spawns the first piece.
func NewController(opts Options) (*Controller, error) {
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}
	if opts.Source == nil {
		return nil, errors.New("blocks: a random source is required")
	}
	if opts.Gravity <= 0 {
		return nil, fmt.Errorf("blocks: gravity interval must be positive, got %s", opts.Gravity)
	}
	// Every layout fits in a 2x4 box from its anchor.
	if opts.SpawnColumn < 0 || opts.SpawnColumn+2 > opts.Geometry.Width {
		return nil, fmt.Errorf("blocks: spawn column %d outside board width %d", opts.SpawnColumn, opts.Geometry.Width)
	}
	if opts.SpawnRow < 0 || opts.SpawnRow+4 > opts.Geometry.Height {
		return nil, fmt.Errorf("blocks: spawn row %d outside board height %d", opts.SpawnRow, opts.Geometry.Height)
	}

	c := &Controller{
		geo:     opts.Geometry,
		gravity: opts.Gravity,
		spawnX:  opts.Geometry.Span(opts.SpawnColumn),
		spawnY:  opts.Geometry.Span(opts.SpawnRow),
		src:     opts.Source,
		board:   NewBoard(opts.Geometry),
	}
	c.Reset()
	return c, nil
}

// Reset clears the board and score and spawns a fresh piece.
func (c *Controller) Reset() {
	c.board.Reset()
	c.score = Score{}
	c.elapsed = 0
	c.paused = false
	c.over = false
	c.spawn()
}

// spawn replaces the active piece with a random one at the spawn point.
func (c *Controller) spawn() {
	c.piece = RandomPiece(c.src, c.spawnX, c.spawnY, c.geo)
	if !c.piece.Valid(c.board) {
		c.over = true
	}
}

// Tick advances the gravity timer by dt. When the accumulated time reaches
// the gravity interval the piece drops one row, or locks if it cannot.
// Returns the lock outcome and true when a lock happened.
func (c *Controller) Tick(dt time.Duration) (LockResult, bool) {
	if c.paused || c.over {
		return LockResult{}, false
	}

	c.elapsed += dt
	if c.elapsed < c.gravity {
		return LockResult{}, false
	}
	c.elapsed -= c.gravity

	if c.piece.TryMove(DirDown, c.board) {
		return LockResult{}, false
	}
	return c.lock(), true
}

// lock merges the active piece into the board, clears full rows, scores,
// and spawns the next piece. The shape is counted before it is replaced.
func (c *Controller) lock() LockResult {
	locked := c.piece.Shape()

	c.board.Insert(c.piece)
	c.score.RecordLock(locked)

	cleared := c.board.ClearFullRows()
	c.score.RecordClear(cleared)

	c.spawn()

	return LockResult{
		Locked:       locked,
		LinesCleared: cleared,
		NewPiece:     c.piece,
		GameOver:     c.over,
	}
}

// Move attempts to shift the active piece. Ignored while paused or over.
func (c *Controller) Move(dir Direction) bool {
	if c.paused || c.over {
		return false
	}
	return c.piece.TryMove(dir, c.board)
}

// Rotate attempts to rotate the active piece. Ignored while paused or over.
func (c *Controller) Rotate() bool {
	if c.paused || c.over {
		return false
	}
	return c.piece.TryRotate(c.board)
}

// TogglePause flips the paused state. A finished game stays unpaused.
func (c *Controller) TogglePause() {
	if c.over {
		return
	}
	c.paused = !c.paused
}

// Paused reports whether play is suspended.
func (c *Controller) Paused() bool {
	return c.paused
}

// Over reports whether the last spawned piece had no room.
func (c *Controller) Over() bool {
	return c.over
}

// Piece returns a copy of the active piece.
func (c *Controller) Piece() Piece {
	return c.piece
}

// Score returns a copy of the current score.
func (c *Controller) Score() Score {
	return c.score
}

// PlacedCells returns a copy of the settled cells.
func (c *Controller) PlacedCells() []Cell {
	return c.board.Cells()
}

// Geometry returns the board dimensions.
func (c *Controller) Geometry() Geometry {
	return c.geo
}

// Elapsed returns the time accumulated toward the next gravity step.
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}
