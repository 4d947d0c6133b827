package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termplay/internal/core"
)

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.KeyEvent
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.RuneKey('q'), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.RuneKey(' '), true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.KeyPress(core.KeyLeft), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.KeyPress(core.KeyEsc), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.KeyPress(core.KeyEnter), true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.KeyPress(core.KeyBackspace), true},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), core.KeyPress(core.KeyPgDown), true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.KeyPress(core.KeyCtrlC), true},
		{"alt chord", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), core.KeyEvent{}, false},
		{"function key", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), core.KeyEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromEvent(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyle(t *testing.T) {
	assert.Equal(t, tcell.StyleDefault, Style(core.ColorDefault))
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.PaletteColor(9)), Style(core.ColorBrightRed))
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.PaletteColor(245)), Style(core.ColorGray))

	for c := core.ColorRed; c <= core.ColorGray; c++ {
		_, ok := palette[c]
		assert.True(t, ok, "color %d has no palette entry", c)
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminal(sim)
	require.NoError(t, err)
	sim.SetSize(30, 6)
	t.Cleanup(term.Close)
	return term, sim
}

// pollKey skips the resize notifications the simulation screen emits.
func pollKey(t *testing.T, term *Terminal) core.KeyEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok, err := term.PollEvent(context.Background(), 50*time.Millisecond)
		require.NoError(t, err)
		if ok {
			return ev
		}
	}
	t.Fatal("no key arrived")
	return core.KeyEvent{}
}

func TestPollEventDeliversKeys(t *testing.T) {
	term, sim := newSimTerminal(t)
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))

	assert.Equal(t, core.RuneKey('x'), pollKey(t, term))
	assert.Equal(t, core.KeyPress(core.KeyUp), pollKey(t, term))
}

func TestPollEventTimesOut(t *testing.T) {
	term, _ := newSimTerminal(t)
	start := time.Now()
	for range 3 {
		_, ok, err := term.PollEvent(context.Background(), 20*time.Millisecond)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollEventCancelled(t *testing.T) {
	term, _ := newSimTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var err error
	for range 5 {
		if _, _, err = term.PollEvent(ctx, time.Hour); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderCopiesFrame(t *testing.T) {
	term, sim := newSimTerminal(t)
	w, h := term.Size()
	require.Equal(t, 30, w)
	require.Equal(t, 6, h)

	frame := core.NewScreen(w, h)
	frame.DrawTextColor(2, 1, "hi", core.ColorBrightGreen)
	require.NoError(t, term.Render(frame))

	r, _, style, _ := sim.GetContent(2, 1)
	assert.Equal(t, 'h', r)
	assert.Equal(t, Style(core.ColorBrightGreen), style)
	r, _, _, _ = sim.GetContent(3, 1)
	assert.Equal(t, 'i', r)
}

func TestClosedTerminal(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Close()
	term.Close()

	assert.Error(t, term.Render(core.NewScreen(1, 1)))
	_, _, err := term.PollEvent(context.Background(), time.Second)
	assert.ErrorIs(t, err, errClosed)
}

type quitScreen struct {
	keys []core.KeyEvent
	done bool
}

func (s *quitScreen) HandleKey(ev core.KeyEvent) {
	s.keys = append(s.keys, ev)
	s.done = ev.String() == "q"
}
func (s *quitScreen) Update()                 {}
func (s *quitScreen) Draw(dst *core.Screen)   { dst.DrawText(0, 0, "running") }
func (s *quitScreen) TickRate() time.Duration { return 10 * time.Millisecond }
func (s *quitScreen) Done() bool              { return s.done }

func TestRunOnClosesTerminal(t *testing.T) {
	term, sim := newSimTerminal(t)
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	screen := &quitScreen{}
	require.NoError(t, RunOn(context.Background(), term, screen))

	assert.Equal(t, core.Keys("a q"), screen.keys)
	assert.True(t, term.closed())
}

func TestRunOnRestoresAfterPanic(t *testing.T) {
	term, _ := newSimTerminal(t)
	assert.Panics(t, func() {
		_ = RunOn(context.Background(), term, panicScreen{})
	})
	assert.True(t, term.closed())
}

type panicScreen struct{}

func (panicScreen) HandleKey(core.KeyEvent) {}
func (panicScreen) Update()                 { panic("boom") }
func (panicScreen) Draw(*core.Screen)       {}
func (panicScreen) TickRate() time.Duration { return 0 }
func (panicScreen) Done() bool              { return false }

// deadScreen is a simulation screen whose Init fails, like a missing tty.
type deadScreen struct{ tcell.SimulationScreen }

func (deadScreen) Init() error { return errors.New("no tty") }

func TestNewTerminalInitFailure(t *testing.T) {
	term, err := NewTerminal(deadScreen{tcell.NewSimulationScreen("")})
	require.Error(t, err)
	assert.Nil(t, term)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no tty")
}
