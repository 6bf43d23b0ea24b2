package session

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// OpKind identifies a draw operation.
type OpKind int

const (
	OpBrick OpKind = iota
	OpBall
	OpPaddle
)

// Op is one recorded draw call in world units.
type Op struct {
	Kind   OpKind
	Rect   core.RectF // Bricks and paddle
	Center core.Vec   // Ball
	Radius float64    // Ball
	Color  breakout.ColorToken
}

// Frame is a complete picture of one tick, ready to replay on any surface.
type Frame struct {
	Width, Height float64 // Canvas size
	Ops           []Op
	Score         int
}

// Recorder is a breakout.Renderer that captures draw calls into a Frame.
type Recorder struct {
	frame Frame
}

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{frame: Frame{Width: width, Height: height}}
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.frame.Ops = r.frame.Ops[:0]
	r.frame.Score = 0
}

// DrawBrick records a brick.
func (r *Recorder) DrawBrick(rect core.RectF, c breakout.ColorToken) {
	r.frame.Ops = append(r.frame.Ops, Op{Kind: OpBrick, Rect: rect, Color: c})
}

// DrawBall records the ball.
func (r *Recorder) DrawBall(center core.Vec, radius float64, c breakout.ColorToken) {
	r.frame.Ops = append(r.frame.Ops, Op{Kind: OpBall, Center: center, Radius: radius, Color: c})
}

// DrawPaddle records the paddle.
func (r *Recorder) DrawPaddle(rect core.RectF, c breakout.ColorToken) {
	r.frame.Ops = append(r.frame.Ops, Op{Kind: OpPaddle, Rect: rect, Color: c})
}

// DrawScore records the score.
func (r *Recorder) DrawScore(score int) {
	r.frame.Score = score
}

// Frame returns a copy of the current frame that stays valid after the next Clear.
func (r *Recorder) Frame() Frame {
	f := r.frame
	f.Ops = make([]Op, len(r.frame.Ops))
	copy(f.Ops, r.frame.Ops)
	return f
}
