package session

// View folds session events into what a front-end should display.
type View struct {
	Frame  Frame
	Prompt string // Pending question, empty when none
	Halted bool
	Err    error // Why the session ended; nil when the player declined
}

// Apply updates the view with ev.
func (v *View) Apply(ev Event) {
	switch ev := ev.(type) {
	case FrameEvent:
		v.Frame = ev.Frame
	case PromptEvent:
		v.Prompt = ev.Message
	case HaltedEvent:
		v.Halted = true
		v.Prompt = ""
		v.Err = ev.Err
	}
}

// Answered clears the pending prompt after the front-end replied.
func (v *View) Answered() {
	v.Prompt = ""
}
