package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/engine"
)

// Model adapts an engine.Scheduler to Bubble Tea. Keys are dispatched as
// soon as they arrive; ticks come from a timer re-armed with the
// scheduler's timeout after every cycle.
type Model struct {
	sched  *engine.Scheduler
	frame  *core.Screen
	width  int
	height int
	gen    int
}

// NewModel wraps sched. The first frame is drawn once the terminal size is
// known.
func NewModel(sched *engine.Scheduler, width, height int) Model {
	return Model{sched: sched, width: width, height: height}
}

// Init arms the tick timer; the first frame follows the initial
// WindowSizeMsg.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen, m.sched.Timeout())
}

// Update handles key, resize and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev, ok := KeyFromMsg(msg)
		if !ok {
			return m, nil
		}
		return m.cycle(&ev)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.cycle(nil)

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.cycle(nil)
	}
	return m, nil
}

// cycle runs the scheduler once and replaces any pending timer, since the
// key may have changed the tick rate.
func (m Model) cycle(ev *core.KeyEvent) (tea.Model, tea.Cmd) {
	m.frame = m.sched.Cycle(ev, m.width, m.height)
	if m.sched.Done() {
		return m, tea.Quit
	}
	m.gen++
	return m, tickCmd(m.gen, m.sched.Timeout())
}

// Done reports whether the driven screen finished.
func (m Model) Done() bool { return m.sched.Done() }

// View renders the last frame.
func (m Model) View() string {
	if m.frame == nil || m.sched.Done() {
		return ""
	}
	return RenderScreen(m.frame)
}

// ErrUnavailable marks a terminal that could not be set up or read.
var ErrUnavailable = errors.New("tui: terminal unavailable")

// Run drives screen in a full-screen Bubble Tea program until it is done
// or ctx is cancelled.
func Run(ctx context.Context, screen engine.Screen, opts ...tea.ProgramOption) error {
	model := NewModel(engine.NewScheduler(screen), 0, 0)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(model, opts...).Run()
	switch {
	case err == nil, errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("tui: %w", err)
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}
