package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// helpHeight is the number of rows below the game reserved for key help.
const helpHeight = 1

// PieceCounter is implemented by games that track locked pieces per shape.
type PieceCounter interface {
	PieceCounts() map[string]int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	scoreSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// The store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// gameHeight returns the rows left for the game after the help line.
func gameHeight(h int) int {
	if h <= helpHeight {
		return h
	}
	return h - helpHeight
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case resultSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save result", "game", msg.gameID, "error", msg.err)
		} else {
			m.logger.Debug("result saved", "game", msg.gameID, "id", msg.id)
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the game keeps running and only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.logger.Debug("game restarted", "game", m.game.ID())
	}

	// Save result on game over (once)
	var save tea.Cmd
	if m.gameState.GameOver && !m.scoreSaved {
		save = m.saveResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tea.Batch(tickCmd(m.config.TickRate), save)
}

// resultSavedMsg reports the outcome of a saveResult command.
type resultSavedMsg struct {
	gameID string
	id     int64
	err    error
}

// saveResult logs the finished game and returns a command that records it.
// The store may retry while the database is locked, so the write runs off
// the update loop. Returns nil when there is no store.
func (m Model) saveResult() tea.Cmd {
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"lines", m.gameState.Lines,
	)
	if m.store == nil {
		return nil
	}

	result := storage.GameResult{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
	}
	if pc, ok := m.game.(PieceCounter); ok {
		result.Pieces = pc.PieceCounts()
	}

	store, logger := m.store, m.logger
	return func() tea.Msg {
		notify := func(err error, next time.Duration) {
			logger.Debug("database busy, retrying save", "error", err, "retry_in", next)
		}
		id, err := store.SaveResultRetry(context.Background(), result, notify)
		return resultSavedMsg{gameID: result.GameID, id: id, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := m.screen.String()
	if d, ok := m.game.(interface{ DebugState() string }); ok {
		content += "\n\n" + d.DebugState()
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
