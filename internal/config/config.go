// Package config provides YAML-based game configuration loading and
// speed presets for the blocks game.
package config

import (
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`       // Cells across
	Height     int `yaml:"height"`      // Cells down
	CellSize   int `yaml:"cell_size"`   // Spatial units per cell
	CellBorder int `yaml:"cell_border"` // Visual inset per cell
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between gravity steps
}

// SpawnConfig defines where new pieces appear, in grid cells.
// A negative column means "center of the board".
type SpawnConfig struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

// Interval returns the gravity interval as a duration.
func (g GravityConfig) Interval() time.Duration {
	return time.Duration(g.IntervalMS) * time.Millisecond
}

// SpawnColumn resolves the configured spawn column against the board width.
func (c BlocksConfig) SpawnColumn() int {
	if c.Spawn.Column < 0 {
		return c.Board.Width/2 - 1
	}
	return c.Spawn.Column
}

// Validate checks that the configuration describes a playable board.
func (c BlocksConfig) Validate() error {
	b := c.Board
	if b.Width < 4 || b.Height < 4 {
		return fmt.Errorf("config: board must be at least 4x4 cells, got %dx%d", b.Width, b.Height)
	}
	if b.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", b.CellSize)
	}
	if b.CellBorder < 0 || 2*b.CellBorder >= b.CellSize {
		return fmt.Errorf("config: cell_border %d does not fit cell_size %d", b.CellBorder, b.CellSize)
	}
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("config: gravity interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	col := c.SpawnColumn()
	if col < 0 || col+2 > b.Width {
		return fmt.Errorf("config: spawn column %d outside board width %d", col, b.Width)
	}
	if c.Spawn.Row < 0 || c.Spawn.Row+4 > b.Height {
		return fmt.Errorf("config: spawn row %d outside board height %d", c.Spawn.Row, b.Height)
	}
	return nil
}
