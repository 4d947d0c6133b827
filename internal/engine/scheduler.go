// Package engine is the fixed-rate loop shared by every terminal backend:
// wait for input or the next tick, dispatch, update, render.
package engine

import (
	"time"

	"github.com/vovakirdan/termplay/internal/core"
)

// Screen is whatever the loop drives. The application state machine is the
// only production implementation.
type Screen interface {
	HandleKey(ev core.KeyEvent)
	Update()
	Draw(dst *core.Screen)
	TickRate() time.Duration
	Done() bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now. Tests use it to step time by hand.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler decides when the screen updates and owns the frame buffer.
// It never sleeps; callers wait for at most Timeout between cycles.
type Scheduler struct {
	screen Screen
	now    func() time.Time
	last   time.Time
	frame  *core.Screen
}

// NewScheduler starts the tick clock at the current time.
func NewScheduler(screen Screen, opts ...Option) *Scheduler {
	s := &Scheduler{
		screen: screen,
		now:    time.Now,
		frame:  core.NewScreen(0, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.last = s.now()
	return s
}

// Timeout is how long the caller may block for input before the next
// update is due. It is never negative.
func (s *Scheduler) Timeout() time.Duration {
	remaining := s.screen.TickRate() - s.now().Sub(s.last)
	return max(remaining, 0)
}

// Cycle runs one loop iteration. ev is nil when the wait timed out. The
// returned frame is reused by the next cycle.
func (s *Scheduler) Cycle(ev *core.KeyEvent, width, height int) *core.Screen {
	if ev != nil {
		s.screen.HandleKey(*ev)
	}

	now := s.now()
	if now.Sub(s.last) >= s.screen.TickRate() {
		s.screen.Update()
		s.last = now
	}

	s.frame.Resize(width, height)
	s.frame.Clear()
	s.screen.Draw(s.frame)
	return s.frame
}

// Done reports whether the screen has finished.
func (s *Scheduler) Done() bool {
	return s.screen.Done()
}
