package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestStepFreeFlight(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	paddleX := s.Paddle.X

	phase := Step(s, cfg)

	if phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", phase)
	}
	if s.Ball.X != 242 || s.Ball.Y != 288 {
		t.Errorf("ball = (%v, %v), want (242, 288)", s.Ball.X, s.Ball.Y)
	}
	if s.Paddle.X != paddleX {
		t.Errorf("paddle moved from %v to %v", paddleX, s.Paddle.X)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestWallBounce(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	tests := []struct {
		name   string
		x, dx  float64
		wantX  float64
		wantDX float64
	}{
		{"left wall", 11, -2, 13, 2},
		{"below radius", 9, -2, 11, 2},
		{"right wall", 469, 2, 467, -2},
		{"clamped left", 5, 2, 10, -2},
		{"clamped right", 475, -2, 470, 2},
		{"no contact", 100, -2, 98, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(cfg)
			s.Ball.X, s.Ball.Y = tt.x, 200
			s.Ball.DX = tt.dx

			if lost := Advance(s, cfg); lost {
				t.Fatal("unexpected loss")
			}
			if s.Ball.X != tt.wantX {
				t.Errorf("x = %v, want %v", s.Ball.X, tt.wantX)
			}
			if s.Ball.DX != tt.wantDX {
				t.Errorf("dx = %v, want %v", s.Ball.DX, tt.wantDX)
			}
			if s.Ball.X < s.Ball.Radius || s.Ball.X > cfg.Canvas.Width-s.Ball.Radius {
				t.Errorf("x = %v escaped the walls", s.Ball.X)
			}
		})
	}
}

func TestTopBounce(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Ball.X, s.Ball.Y = 240, 11

	Advance(s, cfg)

	if s.Ball.DY != 2 {
		t.Errorf("dy = %v, want 2", s.Ball.DY)
	}
	if s.Ball.Y != 13 {
		t.Errorf("y = %v, want 13", s.Ball.Y)
	}
}

func TestPaddleSave(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Ball.X, s.Ball.Y = 240, 309
	s.Ball.DY = 2

	if lost := Advance(s, cfg); lost {
		t.Fatal("ball over the paddle should be saved")
	}
	if s.Ball.DY != -2 {
		t.Errorf("dy = %v, want -2", s.Ball.DY)
	}
	if s.Ball.Y != 307 {
		t.Errorf("y = %v, want 307", s.Ball.Y)
	}
}

func TestPaddleMissLeavesBallInPlace(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Ball.X, s.Ball.Y = 100, 309
	s.Ball.DY = 2
	s.Input.RightHeld = true
	paddleX := s.Paddle.X

	phase := Step(s, cfg)

	if phase != PhaseLost {
		t.Fatalf("phase = %v, want lost", phase)
	}
	if s.Ball.X != 100 || s.Ball.Y != 309 {
		t.Errorf("ball advanced to (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if s.Paddle.X != paddleX {
		t.Errorf("paddle moved on a lost tick")
	}
}

func TestPaddleEdgeIsAMiss(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Ball.X, s.Ball.Y = s.Paddle.X, 309
	s.Ball.DY = 2

	if lost := Advance(s, cfg); !lost {
		t.Error("ball exactly on the paddle edge should be lost")
	}
}

func TestPaddleMovement(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	maxX := cfg.Canvas.Width - cfg.Paddle.Width

	tests := []struct {
		name        string
		x           float64
		left, right bool
		want        float64
	}{
		{"idle", 100, false, false, 100},
		{"right", 100, false, true, 107},
		{"left", 100, true, false, 93},
		{"both prefers right", 100, true, true, 107},
		{"right clamped", maxX - 3, false, true, maxX},
		{"left clamped", 3, true, false, 0},
		{"left at wall", 0, true, false, 0},
		{"right at wall", maxX, false, true, maxX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(cfg)
			s.Paddle.X = tt.x
			s.Input.LeftHeld = tt.left
			s.Input.RightHeld = tt.right

			Advance(s, cfg)

			if s.Paddle.X != tt.want {
				t.Errorf("paddle X = %v, want %v", s.Paddle.X, tt.want)
			}
		})
	}
}

func TestStepWinsOnLastBrick(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Bricks.Each(func(c, r int, b *Brick) {
		if c != 4 || r != 2 {
			b.Alive = false
		}
	})
	s.Score = 14
	// Brick (4,2) spans x 370..445, y 90..110
	s.Ball.X, s.Ball.Y = 400, 100

	phase := Step(s, cfg)

	if phase != PhaseWon {
		t.Fatalf("phase = %v, want won", phase)
	}
	if s.Score != 15 {
		t.Errorf("score = %d, want 15", s.Score)
	}
	if s.Ball.X != 400 || s.Ball.Y != 100 {
		t.Errorf("ball advanced after the win: (%v, %v)", s.Ball.X, s.Ball.Y)
	}
}

func TestStepOnTerminalStateIsNoop(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	for _, phase := range []Phase{PhaseWon, PhaseLost} {
		t.Run(phase.String(), func(t *testing.T) {
			s := NewState(cfg)
			s.Phase = phase
			before := s.Snapshot()

			if got := Step(s, cfg); got != phase {
				t.Errorf("Step returned %v, want %v", got, phase)
			}
			after := s.Snapshot()
			if before.Hash() != after.Hash() {
				t.Error("terminal state was mutated")
			}
		})
	}
}

func TestStepInvariants(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	maxX := cfg.Canvas.Width - cfg.Paddle.Width

	for tick := 0; tick < 5000 && s.Phase == PhasePlaying; tick++ {
		// Sweep the paddle back and forth
		s.Input.RightHeld = tick%120 < 60
		s.Input.LeftHeld = !s.Input.RightHeld

		Step(s, cfg)

		if s.Score != s.Destroyed() {
			t.Fatalf("tick %d: score %d != destroyed %d", tick, s.Score, s.Destroyed())
		}
		if s.Paddle.X < 0 || s.Paddle.X > maxX {
			t.Fatalf("tick %d: paddle X %v out of range", tick, s.Paddle.X)
		}
		if s.Phase == PhaseLost {
			break
		}
		if s.Ball.X < s.Ball.Radius || s.Ball.X > cfg.Canvas.Width-s.Ball.Radius {
			t.Fatalf("tick %d: ball X %v out of range", tick, s.Ball.X)
		}
		if s.Ball.Y > cfg.Canvas.Height-s.Ball.Radius {
			t.Fatalf("tick %d: ball Y %v below the floor", tick, s.Ball.Y)
		}
		if (s.Phase == PhaseWon) != s.Cleared() {
			t.Fatalf("tick %d: phase %v but cleared=%v", tick, s.Phase, s.Cleared())
		}
	}
}
