package blocks

import (
	"fmt"
	"strings"
	"time"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateFalling  GameStateType = "falling"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Shape   Shape
	Cells   [4]Cell
	Placed  int
	Points  int
	Lines   int
	Counts  [ShapeCount]int
	Elapsed time.Duration
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case g.ctrl.Over():
		state = StateGameOver
	case g.ctrl.Paused():
		state = StatePaused
	}

	score := g.ctrl.Score()
	var counts [ShapeCount]int
	for _, s := range Shapes {
		counts[s] = score.Count(s)
	}

	piece := g.ctrl.Piece()
	return Snapshot{
		Tick:    g.tick,
		Shape:   piece.Shape(),
		Cells:   piece.Cells(),
		Placed:  len(g.ctrl.PlacedCells()),
		Points:  score.Points,
		Lines:   score.Lines,
		Counts:  counts,
		Elapsed: g.ctrl.Elapsed(),
		State:   state,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	geo := g.ctrl.Geometry()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, State: %s\n", s.Tick, s.State))
	b.WriteString(fmt.Sprintf("Piece: %s at", s.Shape))
	for _, c := range s.Cells {
		b.WriteString(fmt.Sprintf(" (%d,%d)", geo.Column(c.X), geo.Row(c.Y)))
	}
	b.WriteString(fmt.Sprintf("\nPlaced: %d, Points: %d, Lines: %d\n", s.Placed, s.Points, s.Lines))
	return b.String()
}
