package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultBlocksConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	require.Equal(t, DefaultBlocksConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := []byte("board:\n  width: 12\ngravity:\n  interval_ms: 250\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBlocks(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Board.Width)
	require.Equal(t, 20, cfg.Board.Height, "unset fields keep their defaults")
	require.Equal(t, 250*time.Millisecond, cfg.Gravity.Interval())
	require.Equal(t, 5, cfg.SpawnColumn())
}

func TestLoadBlocksMissingFile(t *testing.T) {
	_, err := LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadBlocksInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 2\n"), 0o600))

	_, err := LoadBlocks(path)
	require.ErrorContains(t, err, "at least 4x4")
}

func TestLoadBlocksMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [oops"), 0o600))

	_, err := LoadBlocks(path)
	require.ErrorContains(t, err, "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		errSub string
	}{
		{name: "defaults", mutate: func(*BlocksConfig) {}},
		{name: "zero cell size", mutate: func(c *BlocksConfig) { c.Board.CellSize = 0 }, errSub: "cell_size"},
		{name: "border too wide", mutate: func(c *BlocksConfig) { c.Board.CellBorder = 15 }, errSub: "cell_border"},
		{name: "no gravity", mutate: func(c *BlocksConfig) { c.Gravity.IntervalMS = 0 }, errSub: "interval_ms"},
		{name: "spawn past right edge", mutate: func(c *BlocksConfig) { c.Spawn.Column = 9 }, errSub: "spawn column"},
		{name: "spawn too low", mutate: func(c *BlocksConfig) { c.Spawn.Row = 17 }, errSub: "spawn row"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.errSub)
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		preset   string
		expected int
	}{
		{"easy", 800},
		{"normal", 500},
		{"hard", 300},
		{"fixed", 700},
		{"bogus", 700},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			cfg.Gravity.IntervalMS = 700
			ApplySpeedPreset(&cfg, ParseSpeedPreset(tc.preset))
			require.Equal(t, tc.expected, cfg.Gravity.IntervalMS)
		})
	}
}
