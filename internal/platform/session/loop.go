// Package session hosts a breakout controller for an interactive front-end.
// A Session owns one loop goroutine that is the only writer of game state:
// ticks, key events and dialog answers all reach the controller through it.
package session

import (
	"context"
	"time"
)

// Loop is a ticker-driven Scheduler. Ticks and posted functions run on the
// goroutine that calls Run, one at a time.
type Loop struct {
	interval   time.Duration
	posted     chan func()
	done       chan struct{}
	next       func()
	beforeTick []func()
	afterTick  []func()
}

// NewLoop creates a loop ticking tickRate times per second.
func NewLoop(tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		interval: time.Second / time.Duration(tickRate),
		posted:   make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// ScheduleNext requests tick on the next ticker beat.
// Must be called from the loop goroutine.
func (l *Loop) ScheduleNext(tick func()) {
	l.next = tick
}

// BeforeTick registers a hook run before every tick.
func (l *Loop) BeforeTick(fn func()) {
	l.beforeTick = append(l.beforeTick, fn)
}

// AfterTick registers a hook run after every tick.
func (l *Loop) AfterTick(fn func()) {
	l.afterTick = append(l.afterTick, fn)
}

// Post queues fn to run on the loop goroutine between ticks.
// It never blocks; it returns false when the queue is full or the loop has
// stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.posted <- fn:
		return true
	default:
		return false
	}
}

// Run drives ticks until no tick is pending or ctx is done.
// It returns nil when the loop ran dry and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for l.next != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posted:
			fn()
		case <-ticker.C:
			l.runTick()
		}
	}
	return nil
}

// runTick runs the pending tick with its hooks.
func (l *Loop) runTick() {
	for _, fn := range l.beforeTick {
		fn()
	}

	tick := l.next
	l.next = nil
	tick()

	for _, fn := range l.afterTick {
		fn()
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
