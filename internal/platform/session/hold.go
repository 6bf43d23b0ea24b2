package session

import "time"

// Hold emulates key releases for terminals that only report presses.
// A tapped key counts as held until hold has passed since its last press.
// Only one key is held at a time, matching terminal auto-repeat.
type Hold struct {
	hold time.Duration
	now  func() time.Time
	key  string
	last time.Time
}

// NewHold creates a hold tracker. A nil clock uses time.Now.
func NewHold(hold time.Duration, now func() time.Time) *Hold {
	if now == nil {
		now = time.Now
	}
	return &Hold{hold: hold, now: now}
}

// Press records a press of key. It returns the previously held key when a
// different one was held, so the caller can release it.
func (h *Hold) Press(key string) (released string) {
	if h.key != "" && h.key != key {
		released = h.key
	}
	h.key = key
	h.last = h.now()
	return released
}

// Expire returns the held key once its hold has run out, and forgets it.
func (h *Hold) Expire() (released string) {
	if h.key == "" || h.now().Sub(h.last) < h.hold {
		return ""
	}
	released = h.key
	h.key = ""
	return released
}

// Held returns the currently held key, if any.
func (h *Hold) Held() string {
	return h.key
}
