package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota // Ball in play
	PhaseWon                  // Every brick destroyed
	PhaseLost                 // Ball missed the paddle
	PhaseHalted               // Player declined to continue; absorbing
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a round.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState aggregates everything one round mutates.
// It is replaced wholesale on restart, never patched back to its initial values.
type GameState struct {
	Ball   Ball
	Paddle Paddle
	Bricks *BrickGrid
	Input  InputState
	Score  int
	Phase  Phase
}

// NewState creates the initial state for a round.
// Two calls with the same config produce identical states.
func NewState(cfg config.BreakoutConfig) *GameState {
	grid := NewBrickGrid(cfg.Bricks.Columns, cfg.Bricks.Rows, cfg.Bricks.Width, cfg.Bricks.Height)
	grid.Layout(cfg.Bricks)

	return &GameState{
		Ball: Ball{
			X:      cfg.Canvas.Width / 2,
			Y:      cfg.Canvas.Height - cfg.Ball.StartOffset,
			DX:     cfg.Ball.DX,
			DY:     cfg.Ball.DY,
			Radius: cfg.Ball.Radius,
		},
		Paddle: Paddle{
			X:      (cfg.Canvas.Width - cfg.Paddle.Width) / 2,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Bricks: grid,
		Score:  0,
		Phase:  PhasePlaying,
	}
}
