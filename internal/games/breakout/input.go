package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// InputState tracks which paddle directions are held.
// Both flags may be set at once; Advance gives right priority.
type InputState struct {
	LeftHeld  bool
	RightHeld bool
}

// SetKey applies a key transition. Unrecognized keys are ignored.
func (in *InputState) SetKey(key string, pressed bool) {
	switch key {
	case core.KeyArrowRight, core.KeyRight:
		in.RightHeld = pressed
	case core.KeyArrowLeft, core.KeyLeft:
		in.LeftHeld = pressed
	}
}
