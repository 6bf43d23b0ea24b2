package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ColorToken is an opaque color identifier; renderers resolve it to a real color.
type ColorToken string

const (
	ColorBrick  ColorToken = "brick"
	ColorBall   ColorToken = "ball"
	ColorPaddle ColorToken = "paddle"
	ColorScore  ColorToken = "score"
)

// Messages passed to the Dialog when a round ends.
const (
	WinMessage  = "You Win! Do you want to play again?"
	LossMessage = "Game Over. Do you want to play again?"
)

// Renderer draws one frame. Calls for a frame start with Clear.
type Renderer interface {
	Clear()
	DrawBrick(r core.RectF, c ColorToken)
	DrawBall(center core.Vec, radius float64, c ColorToken)
	DrawPaddle(r core.RectF, c ColorToken)
	DrawScore(score int)
}

// Dialog asks the player a yes/no question and blocks until answered.
// An error counts as "no".
type Dialog interface {
	Confirm(message string) (bool, error)
}

// Scheduler requests the next tick. The controller calls ScheduleNext at the
// end of every tick that should be followed by another one.
type Scheduler interface {
	ScheduleNext(tick func())
}

// Round summarizes a finished round.
type Round struct {
	Outcome Phase // PhaseWon or PhaseLost
	Score   int
	Total   int // Bricks in the grid
	Ticks   int
	Hash    uint64 // Snapshot hash of the final state
}

// RoundObserver is told about every finished round, before the Dialog is asked.
type RoundObserver interface {
	RoundEnded(r Round)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for round and halt events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a RoundObserver.
func WithObserver(o RoundObserver) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// Controller owns the GameState and sequences ticks. It is the only writer of
// the state and must be driven from a single goroutine.
type Controller struct {
	cfg       config.BreakoutConfig
	state     *GameState
	halted    bool
	ticks     int // Ticks in the current round
	renderer  Renderer
	dialog    Dialog
	scheduler Scheduler
	observer  RoundObserver
	logger    *log.Logger
}

// NewController creates a controller with a fresh GameState.
// No tick runs until Start is called.
func NewController(cfg config.BreakoutConfig, r Renderer, d Dialog, s Scheduler, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		renderer:  r,
		dialog:    d,
		scheduler: s,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = NewState(cfg)
	return c
}

// Start requests the first tick.
func (c *Controller) Start() {
	if c.halted {
		return
	}
	c.scheduler.ScheduleNext(c.Tick)
}

// Tick runs one frame: draw, simulate, and resolve a terminal phase.
func (c *Controller) Tick() {
	if c.halted {
		return
	}

	c.render()
	c.ticks++

	phase := Step(c.state, c.cfg)
	if !phase.Terminal() {
		c.scheduler.ScheduleNext(c.Tick)
		return
	}

	c.finishRound(phase)
}

// finishRound reports the round, asks the player and either restarts or halts.
func (c *Controller) finishRound(phase Phase) {
	snap := c.state.Snapshot()
	round := Round{
		Outcome: phase,
		Score:   c.state.Score,
		Total:   c.state.Bricks.Total(),
		Ticks:   c.ticks,
		Hash:    snap.Hash(),
	}
	c.logger.Info("round ended", "outcome", phase.String(), "score", round.Score, "ticks", round.Ticks)

	if c.observer != nil {
		c.observer.RoundEnded(round)
	}

	if c.askContinue(phase) {
		c.state = NewState(c.cfg)
		c.ticks = 0
		c.scheduler.ScheduleNext(c.Tick)
		return
	}

	c.state = nil
	c.halted = true
	c.logger.Info("session halted")
}

// askContinue runs the Dialog for a terminal phase.
func (c *Controller) askContinue(phase Phase) bool {
	if c.dialog == nil {
		c.logger.Warn("no dialog attached, stopping")
		return false
	}

	msg := LossMessage
	if phase == PhaseWon {
		msg = WinMessage
	}

	ok, err := c.dialog.Confirm(msg)
	if err != nil {
		c.logger.Warn("dialog failed, stopping", "error", err)
		return false
	}
	return ok
}

// render draws the current state.
func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	s := c.state

	c.renderer.Clear()
	s.Bricks.Each(func(_, _ int, b *Brick) {
		if b.Alive && b.Placed {
			c.renderer.DrawBrick(b.Rect(), ColorBrick)
		}
	})
	c.renderer.DrawBall(s.Ball.Center(), s.Ball.Radius, ColorBall)
	c.renderer.DrawPaddle(s.Paddle.Rect(c.cfg.Canvas.Height), ColorPaddle)
	c.renderer.DrawScore(s.Score)
}

// HandleKey applies a key transition to the current round's input.
func (c *Controller) HandleKey(key string, pressed bool) {
	if c.state == nil {
		return
	}
	c.state.Input.SetKey(key, pressed)
}

// State returns the current GameState, or nil once halted.
// Callers must not retain it across ticks.
func (c *Controller) State() *GameState {
	return c.state
}

// Phase returns the current phase, including PhaseHalted.
func (c *Controller) Phase() Phase {
	if c.halted {
		return PhaseHalted
	}
	return c.state.Phase
}

// Halted reports whether the player declined to continue.
func (c *Controller) Halted() bool {
	return c.halted
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.BreakoutConfig {
	return c.cfg
}
