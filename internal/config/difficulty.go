package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(name string) DifficultyPreset {
	switch name {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = cfg.Paddle.Width * 4 / 3
		cfg.Paddle.Speed += 2
	case DifficultyHard:
		cfg.Paddle.Width = cfg.Paddle.Width * 2 / 3
		cfg.Ball.DX *= 1.5
		cfg.Ball.DY *= 1.5
	}

	if cfg.Paddle.Width >= cfg.Canvas.Width {
		cfg.Paddle.Width = cfg.Canvas.Width / 2
	}
}
