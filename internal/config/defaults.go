package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius:      10,
			StartOffset: 30,
			DX:          2,
			DY:          -2,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Loop: LoopConfig{
			TickRate:  60,
			KeyHoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
