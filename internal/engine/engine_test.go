package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termplay/internal/core"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// countingScreen records every call the scheduler makes.
type countingScreen struct {
	rate    time.Duration
	keys    []core.KeyEvent
	updates int
	draws   int
	quitOn  rune
	done    bool
}

func (s *countingScreen) HandleKey(ev core.KeyEvent) {
	s.keys = append(s.keys, ev)
	if ev.Key == core.KeyRune && ev.Rune == s.quitOn {
		s.done = true
	}
}
func (s *countingScreen) Update()                 { s.updates++ }
func (s *countingScreen) TickRate() time.Duration { return s.rate }
func (s *countingScreen) Done() bool              { return s.done }
func (s *countingScreen) Draw(dst *core.Screen) {
	s.draws++
	dst.DrawText(0, 0, fmt.Sprintf("u=%d", s.updates))
}

func newTestScheduler(rate time.Duration) (*Scheduler, *countingScreen, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	screen := &countingScreen{rate: rate, quitOn: 'q'}
	return NewScheduler(screen, WithClock(clock.Now)), screen, clock
}

func TestTimeoutCountsDown(t *testing.T) {
	s, _, clock := newTestScheduler(50 * time.Millisecond)

	assert.Equal(t, 50*time.Millisecond, s.Timeout())
	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, 30*time.Millisecond, s.Timeout())
	clock.Advance(100 * time.Millisecond)
	assert.Zero(t, s.Timeout(), "an overdue tick never yields a negative wait")
}

func TestUpdateOnlyWhenTickElapsed(t *testing.T) {
	s, screen, clock := newTestScheduler(50 * time.Millisecond)

	s.Cycle(nil, 10, 2)
	assert.Zero(t, screen.updates)
	assert.Equal(t, 1, screen.draws)

	clock.Advance(49 * time.Millisecond)
	s.Cycle(nil, 10, 2)
	assert.Zero(t, screen.updates)

	clock.Advance(time.Millisecond)
	s.Cycle(nil, 10, 2)
	assert.Equal(t, 1, screen.updates)
	assert.Equal(t, 50*time.Millisecond, s.Timeout(), "the tick restarts from the update")
}

func TestKeysDoNotAdvanceTime(t *testing.T) {
	s, screen, clock := newTestScheduler(100 * time.Millisecond)
	ev := core.RuneKey('a')

	for range 5 {
		clock.Advance(10 * time.Millisecond)
		s.Cycle(&ev, 10, 2)
	}
	assert.Len(t, screen.keys, 5)
	assert.Zero(t, screen.updates)
	assert.Equal(t, 5, screen.draws, "every cycle renders exactly once")
}

func TestTickRateChangeAppliesImmediately(t *testing.T) {
	s, screen, clock := newTestScheduler(time.Second)
	clock.Advance(100 * time.Millisecond)
	screen.rate = 50 * time.Millisecond

	s.Cycle(nil, 10, 2)
	assert.Equal(t, 1, screen.updates)
}

func TestFrameFollowsTerminalSize(t *testing.T) {
	s, _, _ := newTestScheduler(time.Second)

	f := s.Cycle(nil, 20, 5)
	assert.Equal(t, 20, f.Width())
	assert.Equal(t, 5, f.Height())

	f = s.Cycle(nil, 8, 3)
	assert.Equal(t, 8, f.Width())
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, "u=0     ", f.Row(0))
}

// scriptedTerminal replays keys, one per poll, advancing the clock by the
// requested timeout when the script has a gap.
type scriptedTerminal struct {
	clock    *fakeClock
	script   []*core.KeyEvent
	frames   []string
	pollErr  error
	size     [2]int
	timeouts []time.Duration
}

func (t *scriptedTerminal) PollEvent(_ context.Context, timeout time.Duration) (core.KeyEvent, bool, error) {
	t.timeouts = append(t.timeouts, timeout)
	if len(t.script) == 0 {
		if t.pollErr != nil {
			return core.KeyEvent{}, false, t.pollErr
		}
		t.clock.Advance(timeout)
		return core.KeyEvent{}, false, nil
	}
	next := t.script[0]
	t.script = t.script[1:]
	if next == nil {
		t.clock.Advance(timeout)
		return core.KeyEvent{}, false, nil
	}
	return *next, true, nil
}

func (t *scriptedTerminal) Size() (int, int) { return t.size[0], t.size[1] }

func (t *scriptedTerminal) Render(frame *core.Screen) error {
	t.frames = append(t.frames, frame.Row(0))
	return nil
}

func key(r rune) *core.KeyEvent {
	ev := core.RuneKey(r)
	return &ev
}

func TestRunUntilDone(t *testing.T) {
	s, screen, clock := newTestScheduler(50 * time.Millisecond)
	term := &scriptedTerminal{
		clock:  clock,
		script: []*core.KeyEvent{key('a'), nil, nil, key('b'), key('q')},
		size:   [2]int{10, 2},
	}

	require.NoError(t, Run(context.Background(), term, s))

	assert.True(t, screen.done)
	assert.Len(t, screen.keys, 3)
	assert.Equal(t, 2, screen.updates, "two timed-out waits, two ticks")
	assert.Len(t, term.frames, 5)
	assert.Equal(t, "u=2", term.frames[4][:3])
	assert.Equal(t, 50*time.Millisecond, term.timeouts[0])
}

func TestRunStopsOnCancel(t *testing.T) {
	s, screen, clock := newTestScheduler(50 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := &scriptedTerminal{clock: clock, size: [2]int{10, 2}}
	require.NoError(t, Run(ctx, term, s))
	assert.Zero(t, screen.draws)
}

func TestRunReportsTerminalErrors(t *testing.T) {
	s, _, clock := newTestScheduler(50 * time.Millisecond)
	boom := errors.New("tty gone")
	term := &scriptedTerminal{clock: clock, pollErr: boom, size: [2]int{10, 2}}

	err := Run(context.Background(), term, s)
	assert.ErrorIs(t, err, boom)
}
