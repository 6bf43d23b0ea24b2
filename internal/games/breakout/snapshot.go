package breakout

import "math"

// Snapshot contains the complete state of a round for determinism checks and
// the round journal. Uses primitive types only for stable serialization.
type Snapshot struct {
	BallX, BallY   float64
	BallDX, BallDY float64
	PaddleX        float64
	LeftHeld       bool
	RightHeld      bool
	Score          int
	Phase          Phase

	// Brick alive flags, flattened in column-major order
	Alive []bool
}

// Snapshot returns the current game state as a Snapshot.
func (s *GameState) Snapshot() Snapshot {
	alive := make([]bool, 0, s.Bricks.Total())
	s.Bricks.Each(func(_, _ int, b *Brick) {
		alive = append(alive, b.Alive)
	})

	return Snapshot{
		BallX:     s.Ball.X,
		BallY:     s.Ball.Y,
		BallDX:    s.Ball.DX,
		BallDY:    s.Ball.DY,
		PaddleX:   s.Paddle.X,
		LeftHeld:  s.Input.LeftHeld,
		RightHeld: s.Input.RightHeld,
		Score:     s.Score,
		Phase:     s.Phase,
		Alive:     alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + boolBit(snap.LeftHeld)
	h = h*31 + boolBit(snap.RightHeld)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation

	for _, alive := range snap.Alive {
		h = h*31 + boolBit(alive)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
