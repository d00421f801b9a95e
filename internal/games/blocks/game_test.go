package blocks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.reset(config.DefaultBlocksConfig(), core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Blocks" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Blocks")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		input.Clear()
		switch i % 37 {
		case 3:
			input.Set(core.ActionLeft)
		case 11:
			input.Set(core.ActionRotate)
		case 19:
			input.Set(core.ActionRight)
		case 23:
			input.Set(core.ActionDown)
		}
		if i%500 == 499 {
			input.Set(core.ActionRestart)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Counts == [ShapeCount]int{} && snap1.State != StateGameOver {
		t.Error("no piece locked in 3000 ticks")
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(7)
	start := g.Controller().Piece().Cells()

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause action")
	}

	input.Clear()
	input.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		g.Step(input)
	}
	if g.Controller().Piece().Cells() != start {
		t.Error("piece changed while paused")
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("State().Paused = true after second pause action")
	}
}

func TestStepAppliesEachActionOnce(t *testing.T) {
	g := newTestGame(7)
	geo := g.Controller().Geometry()
	col := geo.Column(g.Controller().Piece().Cells()[0].X)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if got := geo.Column(g.Controller().Piece().Cells()[0].X); got != col-1 {
		t.Errorf("column = %d, expected %d", got, col-1)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(42)

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.Snapshot().Tick != 1 {
		t.Error("restart applied while the game is running")
	}

	g.ctrl.over = true
	g.Step(input)

	if g.State().GameOver {
		t.Error("State().GameOver = true after restart")
	}
	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Points != 0 || snap.Placed != 0 {
		t.Errorf("restart did not reset the game: %+v", snap)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Pieces") {
		t.Error("side panel missing")
	}
	if !strings.Contains(out, string(blockRune)) {
		t.Error("active piece not drawn")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(3)
	out := g.DebugState()

	for _, want := range []string{"Tick: 0", "State: falling", "Piece: " + g.Snapshot().Shape.String(), "Placed: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
