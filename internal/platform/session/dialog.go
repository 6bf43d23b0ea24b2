package session

import "errors"

// ErrClosed is returned by a pending Confirm when the session is cancelled.
var ErrClosed = errors.New("session: closed")

// Dialog bridges the controller's blocking Confirm to an event-driven UI.
// Confirm runs on the loop goroutine; Answer is called from the UI.
type Dialog struct {
	answers chan bool
	done    <-chan struct{}
	prompt  func(message string) bool
}

func newDialog() *Dialog {
	return &Dialog{answers: make(chan bool, 1)}
}

// attach binds the dialog to a running session.
func (d *Dialog) attach(done <-chan struct{}, prompt func(string) bool) {
	d.done = done
	d.prompt = prompt
}

// Confirm publishes the question and waits for an answer without timeout.
func (d *Dialog) Confirm(message string) (bool, error) {
	// Drop answers given before the question was asked
	select {
	case <-d.answers:
	default:
	}

	if d.prompt == nil || !d.prompt(message) {
		return false, ErrClosed
	}

	select {
	case ok := <-d.answers:
		return ok, nil
	case <-d.done:
		return false, ErrClosed
	}
}

// Answer delivers the player's choice. Extra answers are dropped.
func (d *Dialog) Answer(ok bool) {
	select {
	case d.answers <- ok:
	default:
	}
}
