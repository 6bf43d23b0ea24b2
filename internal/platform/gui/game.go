// Package gui hosts breakout sessions in a desktop window using Ebiten.
// Unlike the terminal front-end it receives real key-up events.
package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
)

var (
	background = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	overlay    = color.NRGBA{0x00, 0x00, 0x00, 0xb0}
	accent     = color.NRGBA{0x00, 0x95, 0xdd, 0xff}
)

// tokenColors resolves the game's color tokens for the window.
var tokenColors = map[breakout.ColorToken]color.Color{
	breakout.ColorBrick:  accent,
	breakout.ColorBall:   accent,
	breakout.ColorPaddle: accent,
	breakout.ColorScore:  accent,
}

// steering maps window keys to game key identifiers.
var steering = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  core.KeyArrowLeft,
	ebiten.KeyArrowRight: core.KeyArrowRight,
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *session.Session
	cancel  context.CancelFunc
	view    session.View
	width   int
	height  int
}

// NewGame creates a window game for sess. cancel stops the session when
// the player quits.
func NewGame(sess *session.Session, cancel context.CancelFunc) *Game {
	cfg := sess.Config()
	return &Game{
		session: sess,
		cancel:  cancel,
		width:   int(cfg.Canvas.Width),
		height:  int(cfg.Canvas.Height),
	}
}

// Update drains session events and forwards input.
func (g *Game) Update() error {
	g.drainEvents()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.cancel()
		return ebiten.Termination
	}
	if g.view.Halted {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	if g.view.Prompt != "" {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			g.session.Answer(true)
			g.view.Answered()
		case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.session.Answer(false)
			g.view.Answered()
		}
	}

	// Key transitions still reach the game while a prompt is open, so a
	// release during the prompt is not lost.
	for k, id := range steering {
		if inpututil.IsKeyJustPressed(k) {
			g.session.KeyDown(id)
		}
		if inpututil.IsKeyJustReleased(k) {
			g.session.KeyUp(id)
		}
	}

	return nil
}

// drainEvents applies every event the session has queued.
func (g *Game) drainEvents() {
	events := g.session.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				g.view.Halted = true
				return
			}
			g.view.Apply(ev)
		default:
			return
		}
	}
}

// Draw replays the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, op := range g.view.Frame.Ops {
		c := tokenColors[op.Color]
		switch op.Kind {
		case session.OpBrick, session.OpPaddle:
			vector.DrawFilledRect(screen, float32(op.Rect.X), float32(op.Rect.Y), float32(op.Rect.W), float32(op.Rect.H), c, true)
		case session.OpBall:
			vector.DrawFilledCircle(screen, float32(op.Center.X), float32(op.Center.Y), float32(op.Radius), c, true)
		}
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", g.view.Frame.Score), basicfont.Face7x13, 8, 20, tokenColors[breakout.ColorScore])

	switch {
	case g.view.Prompt != "":
		g.drawMessage(screen, g.view.Prompt, "Y: play again   N: stop")
	case g.view.Halted:
		g.drawMessage(screen, "Thanks for playing.", "Enter: close")
	}
}

// drawMessage shows a centered two-line message over the playfield.
func (g *Game) drawMessage(screen *ebiten.Image, title, hint string) {
	const lineW = 7 // basicfont.Face7x13 advance

	vector.DrawFilledRect(screen, 0, float32(g.height/2-30), float32(g.width), 60, overlay, false)
	text.Draw(screen, title, basicfont.Face7x13, (g.width-len(title)*lineW)/2, g.height/2-4, color.White)
	text.Draw(screen, hint, basicfont.Face7x13, (g.width-len(hint)*lineW)/2, g.height/2+16, color.White)
}

// Layout returns the canvas size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and plays sess until the player stops or closes it.
// It must be called from the main goroutine.
func Run(ctx context.Context, sess *session.Session, scale int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- sess.Run(ctx)
	}()

	g := NewGame(sess, cancel)
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetTPS(sess.Config().Loop.TickRate)

	runErr := ebiten.RunGame(g)
	cancel()
	sessErr := <-errc

	if runErr != nil {
		return fmt.Errorf("gui: %w", runErr)
	}
	if sessErr != nil && !errors.Is(sessErr, context.Canceled) {
		return fmt.Errorf("gui: session: %w", sessErr)
	}
	return nil
}
