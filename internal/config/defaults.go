package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			CellSize:   30,
			CellBorder: 3,
		},
		Gravity: GravityConfig{
			IntervalMS: 500,
		},
		Spawn: SpawnConfig{
			Column: -1,
			Row:    0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
