// Package tui provides the Bubble Tea front-end for breakout sessions,
// locally and over SSH.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// eventMsg wraps a session event.
type eventMsg struct {
	event session.Event
}

// doneMsg is sent when the session's Run returns.
type doneMsg struct {
	err error
}

// waitForEvent returns a command that delivers the next session event.
func waitForEvent(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: ev}
	}
}

var (
	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("32")).
			Padding(0, 2).
			Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for one breakout session.
type Model struct {
	session  *session.Session
	ctx      context.Context
	cancel   context.CancelFunc
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	view     session.View
	width    int
	height   int
	quitting bool
}

// NewModel creates a model hosting sess on a terminal of the given size.
// The session stops when parent is done or the player quits.
func NewModel(parent context.Context, sess *session.Session, cfg core.RuntimeConfig) Model {
	ctx, cancel := context.WithCancel(parent)
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	width, height := cfg.ScreenW, cfg.ScreenH

	return Model{
		session: sess,
		ctx:     ctx,
		cancel:  cancel,
		screen:  core.NewScreen(width, core.Max(1, height-footerHeight)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
}

// Init starts the session loop and begins listening for its events.
func (m Model) Init() tea.Cmd {
	sess, ctx := m.session, m.ctx
	run := func() tea.Msg {
		return doneMsg{err: sess.Run(ctx)}
	}
	return tea.Batch(run, waitForEvent(sess.Events()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		return m.handleEvent(msg.event)

	case doneMsg:
		m.view.Apply(session.HaltedEvent{Err: msg.err})
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.view.Halted {
		return m, nil
	}

	if m.view.Prompt != "" {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.session.Answer(true)
			m.view.Answered()
		case key.Matches(msg, m.keys.No):
			m.session.Answer(false)
			m.view.Answered()
		}
		return m, nil
	}

	if k := m.keys.GameKey(msg); k != "" {
		m.session.Tap(k)
	}
	return m, nil
}

// handleEvent applies a session event and waits for the next one.
func (m Model) handleEvent(ev session.Event) (tea.Model, tea.Cmd) {
	m.view.Apply(ev)
	if m.view.Halted {
		return m, nil
	}
	return m, waitForEvent(m.session.Events())
}

// View renders the playfield, any pending prompt and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.view.Frame, m.screen)
	view := RenderScreen(m.screen)

	switch {
	case m.view.Prompt != "":
		box := promptStyle.Render(m.view.Prompt + "\n\n" + hintStyle.Render("y: play again   n: stop"))
		view = lipgloss.Place(m.width, m.screen.Height(), lipgloss.Center, lipgloss.Center, box)
	case m.view.Halted:
		box := promptStyle.Render("Thanks for playing.\n\n" + hintStyle.Render("q: quit"))
		view = lipgloss.Place(m.width, m.screen.Height(), lipgloss.Center, lipgloss.Center, box)
	}

	return view + "\n" + hintStyle.Render(m.help.View(m.keys))
}

// Halted reports whether the session has ended.
func (m Model) Halted() bool {
	return m.view.Halted
}

// Run starts a Bubble Tea program for sess in the current terminal.
func Run(sess *session.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(context.Background(), sess, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
