package breakout

import "github.com/vovakirdan/tui-breakout/internal/config"

// Destroyed returns the number of bricks no longer alive.
// Score always equals this count.
func (s *GameState) Destroyed() int {
	return s.Bricks.Total() - s.Bricks.CountAlive()
}

// Cleared reports whether every brick has been destroyed.
func (s *GameState) Cleared() bool {
	return s.Score == s.Bricks.Total()
}

// Step runs one simulation tick on s: brick detection, the win check, then
// physics. It returns the resulting phase. Once a terminal phase is reached the
// rest of the tick is skipped, and a state that is not Playing is left as is.
func Step(s *GameState, cfg config.BreakoutConfig) Phase {
	if s.Phase != PhasePlaying {
		return s.Phase
	}

	DetectBrickHits(s)
	if s.Cleared() {
		s.Phase = PhaseWon
		return s.Phase
	}

	if Advance(s, cfg) {
		s.Phase = PhaseLost
	}
	return s.Phase
}
