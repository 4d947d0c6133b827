package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/termplay/internal/core"
)

// Terminal is a backend that can wait for keys and show frames.
type Terminal interface {
	// PollEvent blocks for at most timeout. ok is false when no key arrived.
	PollEvent(ctx context.Context, timeout time.Duration) (ev core.KeyEvent, ok bool, err error)
	// Size is queried every cycle so resizes take effect on the next frame.
	Size() (width, height int)
	Render(frame *core.Screen) error
}

// Run drives s until the screen is done or ctx is cancelled. Cancellation
// is a normal exit; terminal failures are returned.
func Run(ctx context.Context, t Terminal, s *Scheduler) error {
	for !s.Done() {
		if ctx.Err() != nil {
			return nil
		}

		ev, ok, err := t.PollEvent(ctx, s.Timeout())
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("engine: poll input: %w", err)
		}

		var pending *core.KeyEvent
		if ok {
			pending = &ev
		}
		w, h := t.Size()
		frame := s.Cycle(pending, w, h)
		if err := t.Render(frame); err != nil {
			return fmt.Errorf("engine: render: %w", err)
		}
	}
	return nil
}
