package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// CollisionSide indicates which boundary the ball was about to cross.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom // Bottom edge: either a paddle save or a miss
	CollisionLeft
	CollisionRight
)

// CheckWallCollision inspects the ball's next position against the side walls.
func CheckWallCollision(ball *Ball, canvasW float64) CollisionSide {
	nextX := ball.X + ball.DX
	switch {
	case nextX > canvasW-ball.Radius:
		return CollisionRight
	case nextX < ball.Radius:
		return CollisionLeft
	}
	return CollisionNone
}

// CheckVerticalCollision inspects the ball's next position against the top
// wall and the bottom edge.
func CheckVerticalCollision(ball *Ball, canvasH float64) CollisionSide {
	nextY := ball.Y + ball.DY
	switch {
	case nextY < ball.Radius:
		return CollisionTop
	case nextY > canvasH-ball.Radius:
		return CollisionBottom
	}
	return CollisionNone
}

// PaddleCatches reports whether the ball's current x lies strictly between the
// paddle edges.
func PaddleCatches(ball *Ball, paddle *Paddle) bool {
	return ball.X > paddle.X && ball.X < paddle.Right()
}

// Advance runs the physics half of a tick: wall bounce, top/bottom resolution,
// paddle motion and ball movement, in that order. It returns true when the
// ball reached the bottom edge outside the paddle; in that case nothing after
// the bottom check is applied.
func Advance(s *GameState, cfg config.BreakoutConfig) (lost bool) {
	ball := &s.Ball
	w, h := cfg.Canvas.Width, cfg.Canvas.Height

	if CheckWallCollision(ball, w) != CollisionNone {
		ball.BounceX()
	}

	switch CheckVerticalCollision(ball, h) {
	case CollisionTop:
		ball.BounceY()
	case CollisionBottom:
		if !PaddleCatches(ball, &s.Paddle) {
			return true
		}
		ball.BounceY()
	}

	movePaddle(&s.Paddle, s.Input, cfg)

	ball.Move()
	ball.X = core.ClampF(ball.X, ball.Radius, w-ball.Radius)
	if ball.Y > h-ball.Radius {
		ball.Y = h - ball.Radius
	}

	return false
}

// movePaddle applies held input. Right wins when both directions are held.
func movePaddle(p *Paddle, in InputState, cfg config.BreakoutConfig) {
	maxX := cfg.Canvas.Width - p.Width

	if in.RightHeld && p.X < maxX {
		p.X += cfg.Paddle.Speed
	} else if in.LeftHeld && p.X > 0 {
		p.X -= cfg.Paddle.Speed
	}

	p.X = core.ClampF(p.X, 0, maxX)
}
