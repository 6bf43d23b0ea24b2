// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout simulation.
package config

// BreakoutConfig contains all configuration for a breakout session.
// It is loaded once at startup and never mutated afterwards.
type BreakoutConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Bricks BricksConfig `yaml:"bricks"`
	Loop   LoopConfig   `yaml:"loop"`
}

// CanvasConfig defines the arena size in world units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and launch parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the bottom edge
	DX          float64 `yaml:"dx"`           // Initial horizontal velocity per tick
	DY          float64 `yaml:"dy"`           // Initial vertical velocity per tick
}

// PaddleConfig defines the paddle size and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units moved per tick while a direction is held
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// LoopConfig defines the session cadence and input handling.
type LoopConfig struct {
	TickRate  int `yaml:"tick_rate"`   // Ticks per second
	KeyHoldMS int `yaml:"key_hold_ms"` // Terminal key hold emulation window
}

// Total returns the number of bricks in the grid.
func (b BricksConfig) Total() int {
	return b.Rows * b.Columns
}
