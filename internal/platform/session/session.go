package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Event is something a front-end must react to.
type Event interface {
	event()
}

// FrameEvent carries the frame drawn by the latest tick.
type FrameEvent struct {
	Frame Frame
}

// PromptEvent asks the player a yes/no question. The session is paused until
// Answer is called.
type PromptEvent struct {
	Message string
}

// HaltedEvent is the last event of a session. Err is nil when the player
// declined to continue.
type HaltedEvent struct {
	Err error
}

func (FrameEvent) event()  {}
func (PromptEvent) event() {}
func (HaltedEvent) event() {}

// Options configures a Session.
type Options struct {
	Config   config.BreakoutConfig
	Logger   *log.Logger
	Observer breakout.RoundObserver
	Clock    func() time.Time // Used for key hold emulation; nil means time.Now
}

// Session runs one breakout controller on its own loop.
type Session struct {
	cfg        config.BreakoutConfig
	loop       *Loop
	recorder   *Recorder
	dialog     *Dialog
	hold       *Hold
	controller *breakout.Controller
	events     chan Event
	logger     *log.Logger
}

// New creates a session. Nothing runs until Run is called.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config

	s := &Session{
		cfg:      cfg,
		loop:     NewLoop(cfg.Loop.TickRate),
		recorder: NewRecorder(cfg.Canvas.Width, cfg.Canvas.Height),
		dialog:   newDialog(),
		hold:     NewHold(time.Duration(cfg.Loop.KeyHoldMS)*time.Millisecond, opts.Clock),
		events:   make(chan Event, 16),
		logger:   logger,
	}

	ctrlOpts := []breakout.Option{breakout.WithLogger(logger)}
	if opts.Observer != nil {
		ctrlOpts = append(ctrlOpts, breakout.WithObserver(opts.Observer))
	}
	s.controller = breakout.NewController(cfg, s.recorder, s.dialog, s.loop, ctrlOpts...)

	s.loop.BeforeTick(s.expireHold)
	s.loop.AfterTick(s.publishFrame)
	return s
}

// Run plays until the player declines to continue or ctx is done, then sends
// a HaltedEvent and closes Events. It must be called once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.events)

	s.dialog.attach(ctx.Done(), func(message string) bool {
		select {
		case s.events <- PromptEvent{Message: message}:
			return true
		case <-ctx.Done():
			return false
		}
	})

	s.logger.Debug("session started", "tick_rate", s.cfg.Loop.TickRate)
	s.controller.Start()
	err := s.loop.Run(ctx)
	if err == nil && ctx.Err() != nil {
		// Cancelled while a prompt was pending
		err = ctx.Err()
	}
	s.logger.Debug("session stopped", "error", err)

	select {
	case s.events <- HaltedEvent{Err: err}:
	default:
	}
	return err
}

// Events returns the event stream. It is closed when Run returns.
func (s *Session) Events() <-chan Event {
	return s.events
}

// KeyDown reports a key press from a front-end with real key-up events.
func (s *Session) KeyDown(key string) {
	s.loop.Post(func() {
		s.controller.HandleKey(key, true)
	})
}

// KeyUp reports a key release.
func (s *Session) KeyUp(key string) {
	s.loop.Post(func() {
		s.controller.HandleKey(key, false)
	})
}

// Tap reports a press from a front-end without key-up events. The key is
// released automatically after the configured hold time.
func (s *Session) Tap(key string) {
	s.loop.Post(func() {
		if released := s.hold.Press(key); released != "" {
			s.controller.HandleKey(released, false)
		}
		s.controller.HandleKey(key, true)
	})
}

// Answer replies to the pending PromptEvent.
func (s *Session) Answer(ok bool) {
	s.dialog.Answer(ok)
}

// Config returns the session's game configuration.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}

func (s *Session) expireHold() {
	if released := s.hold.Expire(); released != "" {
		s.controller.HandleKey(released, false)
	}
}

func (s *Session) publishFrame() {
	select {
	case s.events <- FrameEvent{Frame: s.recorder.Frame()}:
	default:
		// UI is behind; it will get the next frame
	}
}
