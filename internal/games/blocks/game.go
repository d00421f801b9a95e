package blocks

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// GameID is the registry identifier of the blocks game.
const GameID = "blocks"

// Layout constants for the terminal view.
const (
	hudHeight  = 1  // Status line above the well
	sideWidth  = 14 // Piece counter panel to the right of the well
	cellChars  = 2  // Terminal columns per board cell
	blockRune  = '█'
	emptyRune  = '·'
	panelInset = 2
)

// Package-level settings applied on the next Reset.
var (
	configPath  string
	speedPreset config.SpeedPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the gravity speed preset by name.
func SetSpeedPreset(preset string) {
	speedPreset = config.ParseSpeedPreset(preset)
}

// Game adapts the Controller to the arcade game interface.
type Game struct {
	cfg      config.BlocksConfig
	ctrl     *Controller
	rng      *rand.Rand
	tick     uint64
	tickRate int
	frame    time.Duration // Simulated time per Step

	screenW int
	screenH int

	lastClear int // Lines removed by the most recent lock
}

// New creates a new blocks game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset loads configuration and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if speedPreset != "" {
		config.ApplySpeedPreset(&cfg, speedPreset)
	}
	g.reset(cfg, runtime)
}

// reset starts a new game from an already loaded configuration.
func (g *Game) reset(cfg config.BlocksConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.lastClear = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.frame = time.Second / time.Duration(g.tickRate)

	ctrl, err := NewController(OptionsFromConfig(cfg, g.rng))
	if err != nil {
		// Loaded configs are validated; only a hand-built one can get here
		ctrl, _ = NewController(DefaultOptions(g.rng))
	}
	g.ctrl = ctrl
}

// OptionsFromConfig converts a loaded configuration to controller options.
func OptionsFromConfig(cfg config.BlocksConfig, src Source) Options {
	return Options{
		Geometry: Geometry{
			CellSize:   cfg.Board.CellSize,
			CellBorder: cfg.Board.CellBorder,
			Width:      cfg.Board.Width,
			Height:     cfg.Board.Height,
		},
		Gravity:     cfg.Gravity.Interval(),
		SpawnColumn: cfg.SpawnColumn(),
		SpawnRow:    cfg.Spawn.Row,
		Source:      src,
	}
}

// Step advances the game by one tick. Pause is applied first, then at most
// one attempt per movement action, then gravity.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.ctrl.Over() {
		g.reset(g.cfg, core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.ctrl.TogglePause()
	}

	if input.Has(core.ActionLeft) {
		g.ctrl.Move(DirLeft)
	}
	if input.Has(core.ActionRight) {
		g.ctrl.Move(DirRight)
	}
	if input.Has(core.ActionDown) {
		g.ctrl.Move(DirDown)
	}
	if input.Has(core.ActionRotate) {
		g.ctrl.Rotate()
	}

	if res, locked := g.ctrl.Tick(g.frame); locked {
		g.lastClear = res.LinesCleared
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.ctrl.Score()
	return core.GameState{
		Score:    score.Points,
		Lines:    score.Lines,
		GameOver: g.ctrl.Over(),
		Paused:   g.ctrl.Paused(),
	}
}

// PieceCounts returns the number of locked pieces per shape name.
func (g *Game) PieceCounts() map[string]int {
	score := g.ctrl.Score()
	counts := make(map[string]int, ShapeCount)
	for _, shape := range Shapes {
		counts[shape.String()] = score.Count(shape)
	}
	return counts
}

// Controller exposes the rules engine, for hosts that need piece counts.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// wellRect returns the bordered playfield area on screen.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	geo := g.ctrl.Geometry()
	w := geo.Width*cellChars + 2
	h := geo.Height + 2
	x := (dst.Width() - (w + sideWidth)) / 2
	if x < 0 {
		x = 0
	}
	return core.NewRect(x, hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	well := g.wellRect(dst)
	if well.Right()+sideWidth > dst.Width() || well.Bottom() > dst.Height() {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(well)
	g.renderWell(dst, well)
	g.renderPanel(dst, well)

	switch {
	case g.ctrl.Over():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.ctrl.Score().Points))
	case g.ctrl.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score := g.ctrl.Score()
	hud := fmt.Sprintf(" Blocks — Score: %d  Lines: %d", score.Points, score.Lines)
	if g.lastClear > 0 {
		hud += fmt.Sprintf("  (+%d)", PointsFor(g.lastClear))
	}
	dst.DrawText(0, 0, hud)
}

// renderWell draws empty slots and then every cell of the render model.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	geo := g.ctrl.Geometry()
	for row := 0; row < geo.Height; row++ {
		for col := 0; col < geo.Width; col++ {
			dst.SetColored(well.X+1+col*cellChars, well.Y+1+row, emptyRune, core.ColorGray)
		}
	}

	for _, rc := range g.ctrl.RenderModel() {
		col := geo.Column(rc.X)
		row := geo.Row(rc.Y)
		sx := well.X + 1 + col*cellChars
		sy := well.Y + 1 + row
		if !well.Contains(sx, sy) {
			continue
		}
		for i := 0; i < cellChars; i++ {
			dst.SetColored(sx+i, sy, blockRune, rc.Color)
		}
	}
}

// renderPanel draws per-shape lock counts beside the well.
func (g *Game) renderPanel(dst *core.Screen, well core.Rect) {
	score := g.ctrl.Score()
	x := well.Right() + panelInset
	y := well.Y + 1

	dst.DrawText(x, y, "Pieces")
	dst.DrawHLine(x, y+1, sideWidth-panelInset-2, '─')
	for i, shape := range Shapes {
		row := y + 2 + i
		dst.SetColored(x, row, blockRune, shape.Color())
		dst.DrawText(x+2, row, fmt.Sprintf("%s %4d", shape, score.Count(shape)))
	}
	dst.DrawText(x, y+3+ShapeCount, fmt.Sprintf("Total %3d", score.Pieces()))
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
