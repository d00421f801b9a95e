package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagConfig  string
	flagSpeed   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/A, Right/D   - Move piece
  Down/S            - Move piece down one row
  Up/W/Space        - Rotate piece
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot to ~/.blocks/screenshots
  Q/Ctrl+C          - Quit

Speed options (gravity stays fixed for the whole game):
  easy   - One row every 800ms
  normal - One row every 500ms
  hard   - One row every 300ms
  fixed  - Use the interval from the config file

Examples:
  blocks play
  blocks play --speed hard
  blocks play --config ./my-blocks.yaml
  blocks play --log-file /tmp/blocks.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	// A bad custom config is reported here rather than silently replaced
	// by defaults inside the game.
	if flagConfig != "" {
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if flagSpeed != "" && config.ParseSpeedPreset(flagSpeed) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown speed %q (use easy, normal, hard or fixed)\n", flagSpeed)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Without --speed, ask interactively
	speed := flagSpeed
	if speed == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		preset, err := tui.RunSpeedMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the menu
		if preset == "" {
			return
		}
		speed = string(preset)
	}

	blocks.SetConfigPath(flagConfig)
	blocks.SetSpeedPreset(speed)

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = newLogger(f, "blocks")
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
