package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// manualScheduler holds the requested tick until the test runs it.
type manualScheduler struct {
	pending  func()
	requests int
}

func (s *manualScheduler) ScheduleNext(tick func()) {
	s.pending = tick
	s.requests++
}

// run executes up to n pending ticks and returns how many ran.
func (s *manualScheduler) run(n int) int {
	ran := 0
	for ran < n && s.pending != nil {
		tick := s.pending
		s.pending = nil
		tick()
		ran++
	}
	return ran
}

// scriptedDialog answers with a fixed sequence and records the messages.
type scriptedDialog struct {
	answers  []bool
	err      error
	messages []string
}

func (d *scriptedDialog) Confirm(message string) (bool, error) {
	d.messages = append(d.messages, message)
	if d.err != nil {
		return false, d.err
	}
	if len(d.answers) == 0 {
		return false, nil
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

// recordingRenderer logs draw calls by name.
type recordingRenderer struct {
	calls []string
	score int
}

func (r *recordingRenderer) Clear() { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) DrawBrick(core.RectF, ColorToken) { r.calls = append(r.calls, "brick") }
func (r *recordingRenderer) DrawBall(core.Vec, float64, ColorToken) { r.calls = append(r.calls, "ball") }
func (r *recordingRenderer) DrawPaddle(core.RectF, ColorToken) { r.calls = append(r.calls, "paddle") }
func (r *recordingRenderer) DrawScore(score int) {
	r.calls = append(r.calls, "score")
	r.score = score
}

type roundLog struct {
	rounds []Round
}

func (l *roundLog) RoundEnded(r Round) {
	l.rounds = append(l.rounds, r)
}

// nearWin leaves only brick (4,2) alive with the ball inside it.
func nearWin(s *GameState) {
	s.Bricks.Each(func(c, r int, b *Brick) {
		if c != 4 || r != 2 {
			b.Alive = false
		}
	})
	s.Score = 14
	s.Ball.X, s.Ball.Y = 400, 100
}

// nearLoss puts the ball on the floor away from the paddle.
func nearLoss(s *GameState) {
	s.Ball.X, s.Ball.Y = 100, 309
	s.Ball.DY = 2
}

func TestControllerStartSchedulesFirstTick(t *testing.T) {
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), nil, &scriptedDialog{}, sched)

	if sched.requests != 0 {
		t.Fatal("no tick should be requested before Start")
	}
	c.Start()
	if sched.pending == nil {
		t.Fatal("Start should request a tick")
	}

	sched.run(10)
	if sched.requests != 11 {
		t.Errorf("requests = %d, want 11", sched.requests)
	}
	if c.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", c.Phase())
	}
}

func TestControllerRendersFrame(t *testing.T) {
	r := &recordingRenderer{}
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), r, &scriptedDialog{}, sched)
	c.State().Bricks.At(0, 0).Alive = false
	c.State().Score = 1

	c.Tick()

	if len(r.calls) != 1+14+3 {
		t.Fatalf("draw calls = %d, want 18: %v", len(r.calls), r.calls)
	}
	if r.calls[0] != "clear" {
		t.Errorf("first call = %q, want clear", r.calls[0])
	}
	tail := r.calls[len(r.calls)-3:]
	if tail[0] != "ball" || tail[1] != "paddle" || tail[2] != "score" {
		t.Errorf("tail = %v, want [ball paddle score]", tail)
	}
	if r.score != 1 {
		t.Errorf("drawn score = %d, want 1", r.score)
	}
}

func TestControllerWinAndContinue(t *testing.T) {
	dialog := &scriptedDialog{answers: []bool{true}}
	sched := &manualScheduler{}
	observer := &roundLog{}
	c := NewController(config.DefaultBreakoutConfig(), nil, dialog, sched, WithObserver(observer))
	nearWin(c.State())

	c.Tick()

	if len(dialog.messages) != 1 || dialog.messages[0] != WinMessage {
		t.Fatalf("dialog messages = %v, want [%q]", dialog.messages, WinMessage)
	}
	if len(observer.rounds) != 1 {
		t.Fatalf("observed rounds = %d, want 1", len(observer.rounds))
	}
	round := observer.rounds[0]
	if round.Outcome != PhaseWon || round.Score != 15 || round.Total != 15 || round.Ticks != 1 {
		t.Errorf("round = %+v", round)
	}

	s := c.State()
	if s.Score != 0 || s.Phase != PhasePlaying {
		t.Errorf("after reset: score=%d phase=%v", s.Score, s.Phase)
	}
	if s.Bricks.CountAlive() != 15 {
		t.Errorf("after reset: alive=%d, want 15", s.Bricks.CountAlive())
	}
	if s.Ball.X != 240 || s.Ball.Y != 290 {
		t.Errorf("after reset: ball at (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if sched.pending == nil {
		t.Error("continue should request another tick")
	}
}

func TestControllerLossAndDecline(t *testing.T) {
	dialog := &scriptedDialog{answers: []bool{false}}
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), nil, dialog, sched)
	c.Start()
	sched.pending = nil
	nearLoss(c.State())

	c.Tick()

	if len(dialog.messages) != 1 || dialog.messages[0] != LossMessage {
		t.Fatalf("dialog messages = %v, want [%q]", dialog.messages, LossMessage)
	}
	if !c.Halted() || c.Phase() != PhaseHalted {
		t.Fatalf("phase = %v, want halted", c.Phase())
	}
	if c.State() != nil {
		t.Error("state should be discarded on halt")
	}
	if sched.pending != nil {
		t.Error("no tick should be requested once halted")
	}
}

func TestControllerLossAndContinue(t *testing.T) {
	dialog := &scriptedDialog{answers: []bool{true}}
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), nil, dialog, sched)
	nearLoss(c.State())

	c.Tick()

	if c.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", c.Phase())
	}
	if c.State().Ball.Y != 290 {
		t.Errorf("ball Y = %v, want fresh 290", c.State().Ball.Y)
	}
}

func TestControllerHaltedIsAbsorbing(t *testing.T) {
	r := &recordingRenderer{}
	dialog := &scriptedDialog{answers: []bool{false}}
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), r, dialog, sched)
	nearLoss(c.State())
	c.Tick()

	requests := sched.requests
	calls := len(r.calls)

	c.Tick()
	c.Start()
	c.HandleKey(core.KeyArrowLeft, true)

	if sched.requests != requests {
		t.Error("halted controller requested a tick")
	}
	if len(r.calls) != calls {
		t.Error("halted controller drew a frame")
	}
	if len(dialog.messages) != 1 {
		t.Errorf("dialog asked %d times, want 1", len(dialog.messages))
	}
	if c.Phase() != PhaseHalted {
		t.Errorf("phase = %v, want halted", c.Phase())
	}
}

func TestControllerDialogFailureHalts(t *testing.T) {
	tests := []struct {
		name   string
		dialog Dialog
	}{
		{"error", &scriptedDialog{err: errors.New("closed")}},
		{"nil dialog", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &manualScheduler{}
			c := NewController(config.DefaultBreakoutConfig(), nil, tt.dialog, sched)
			nearLoss(c.State())

			c.Tick()

			if !c.Halted() {
				t.Error("failed dialog should halt the session")
			}
			if sched.pending != nil {
				t.Error("no tick should be requested")
			}
		})
	}
}

func TestControllerHandleKey(t *testing.T) {
	sched := &manualScheduler{}
	c := NewController(config.DefaultBreakoutConfig(), nil, &scriptedDialog{}, sched)
	start := c.State().Paddle.X

	c.HandleKey(core.KeyArrowRight, true)
	c.Tick()
	c.HandleKey(core.KeyArrowRight, false)
	c.Tick()

	if got := c.State().Paddle.X; got != start+7 {
		t.Errorf("paddle X = %v, want %v", got, start+7)
	}

	c.HandleKey("Escape", true)
	if c.State().Input.LeftHeld || c.State().Input.RightHeld {
		t.Error("unknown key changed input")
	}
}

func TestControllerDeterminism(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	play := func() (uint64, []Round) {
		sched := &manualScheduler{}
		observer := &roundLog{}
		c := NewController(cfg, nil, &scriptedDialog{answers: []bool{true, true}}, sched, WithObserver(observer))
		c.Start()
		for i := 0; i < 3000 && sched.pending != nil; i++ {
			switch {
			case i%90 == 0:
				c.HandleKey(core.KeyArrowLeft, true)
				c.HandleKey(core.KeyArrowRight, false)
			case i%90 == 45:
				c.HandleKey(core.KeyArrowLeft, false)
				c.HandleKey(core.KeyArrowRight, true)
			}
			sched.run(1)
		}
		if c.Halted() {
			return 0, observer.rounds
		}
		snap := c.State().Snapshot()
		return snap.Hash(), observer.rounds
	}

	hash1, rounds1 := play()
	hash2, rounds2 := play()

	if hash1 != hash2 {
		t.Errorf("final hashes differ: %d vs %d", hash1, hash2)
	}
	if len(rounds1) != len(rounds2) {
		t.Fatalf("round counts differ: %d vs %d", len(rounds1), len(rounds2))
	}
	for i := range rounds1 {
		if rounds1[i] != rounds2[i] {
			t.Errorf("round %d differs: %+v vs %+v", i, rounds1[i], rounds2[i])
		}
	}
}
