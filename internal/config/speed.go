package config

// SpeedPreset represents a named gravity speed. The speed is fixed for the
// whole game; there is no progression.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedFixed  SpeedPreset = "fixed"
)

// ParseSpeedPreset maps a flag value to a preset. Unknown values map to "".
func ParseSpeedPreset(s string) SpeedPreset {
	switch SpeedPreset(s) {
	case SpeedEasy, SpeedNormal, SpeedHard, SpeedFixed:
		return SpeedPreset(s)
	default:
		return ""
	}
}

// IntervalForPreset returns the gravity interval in milliseconds for a
// preset, or 0 when the preset keeps the configured value.
func IntervalForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedEasy:
		return 800
	case SpeedNormal:
		return 500
	case SpeedHard:
		return 300
	default:
		return 0
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *BlocksConfig, preset SpeedPreset) {
	if ms := IntervalForPreset(preset); ms > 0 {
		cfg.Gravity.IntervalMS = ms
	}
}
