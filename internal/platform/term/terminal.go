// Package term is the direct-terminal backend: a tcell screen behind the
// engine.Terminal interface. It does not depend on Bubble Tea.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/engine"
)

// eventBuffer absorbs bursts such as key repeat while a frame renders.
const eventBuffer = 100

var errClosed = errors.New("terminal closed")

// ErrUnavailable marks a terminal that could not be initialised.
var ErrUnavailable = errors.New("term: terminal unavailable")

// Terminal owns a tcell screen and the goroutine pumping its events.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// Open initialises the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: new screen: %w", ErrUnavailable, err)
	}
	return NewTerminal(screen)
}

// NewTerminal takes ownership of screen, initialises it and starts the
// event pump. Tests pass a simulation screen.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: init screen: %w", ErrUnavailable, err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards events until the screen is finalised; PollEvent returns
// nil from then on.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollEvent waits up to timeout for a key. A resize ends the wait early
// with no key so the next frame picks up the new size.
func (t *Terminal) PollEvent(ctx context.Context, timeout time.Duration) (core.KeyEvent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		if t.closed() {
			return core.KeyEvent{}, false, errClosed
		}
		select {
		case <-ctx.Done():
			return core.KeyEvent{}, false, ctx.Err()
		case <-t.done:
			return core.KeyEvent{}, false, errClosed
		case <-timer.C:
			return core.KeyEvent{}, false, nil
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := KeyFromEvent(ev); ok {
					return k, true, nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
				return core.KeyEvent{}, false, nil
			}
		}
	}
}

// Size returns the current terminal size.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Render copies the frame into the tcell back buffer and shows it.
func (t *Terminal) Render(frame *core.Screen) error {
	if t.closed() {
		return errClosed
	}
	for y := range frame.Height() {
		for x := range frame.Width() {
			c := frame.Cell(x, y)
			t.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) closed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Run drives screen on the controlling terminal. Setup failures wrap
// ErrUnavailable. The terminal is restored on every exit path; deferred
// cleanup also runs while a panic in a game unwinds, so the shell is usable
// when the trace prints.
func Run(ctx context.Context, screen engine.Screen) error {
	t, err := Open()
	if err != nil {
		return err
	}
	return RunOn(ctx, t, screen)
}

// RunOn is Run on an already open terminal, which it closes.
func RunOn(ctx context.Context, t *Terminal, screen engine.Screen) error {
	defer t.Close()
	return engine.Run(ctx, t, engine.NewScheduler(screen))
}
