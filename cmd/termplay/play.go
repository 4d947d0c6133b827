package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termplay/internal/app"
	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/engine"
	"github.com/vovakirdan/termplay/internal/games/catalog"
	tcellterm "github.com/vovakirdan/termplay/internal/platform/term"
	"github.com/vovakirdan/termplay/internal/platform/tui"
)

func newPlayCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "play <game>",
		Aliases: []string{"game"},
		Short:   "Launch a game directly",
		Long: `Start the given game without going through the menu. Quitting the
game returns to the menu.

Examples:
  termplay play tetris
  termplay play minesweeper --seed 42
  termplay game life --backend tcell`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var ids []string
			for _, d := range catalog.Descriptors() {
				ids = append(ids, d.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArcade(cmd.Context(), f, args[0])
		},
	}
}

// runArcade runs the interactive arcade, optionally straight into a game.
// Argument problems are reported before the terminal is touched.
func runArcade(ctx context.Context, f *globalFlags, launch string) error {
	if launch != "" {
		reg, err := buildRegistry(catalog.Descriptors()...)
		if err != nil {
			return err
		}
		if _, err := lookupGame(reg, launch); err != nil {
			return err
		}
	}
	if err := f.validateBackend(); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return &exitError{code: exitTerminal, err: errors.New("termplay needs an interactive terminal")}
	}

	logger, closeLog := interactiveLogger(f)
	defer closeLog()

	rt, err := newRuntime(f, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	player := audio.NewManager(rt.settings.Audio, logger)
	defer player.Close()

	opts := app.Options{
		Registry: rt.reg,
		Audio:    player,
		Saver:    rt.configs,
		Settings: rt.settings,
		Logger:   logger,
		Player:   f.player,
		Seed:     f.seed,
	}
	if rt.store != nil {
		opts.Scores = rt.store
	}
	machine := app.New(opts)
	if launch != "" {
		if err := machine.Launch(launch); err != nil {
			return err
		}
	}

	logger.Info("arcade started", "backend", f.backend, "game", launch, "player", f.player)
	defer logger.Info("arcade stopped")

	err = runBackend(ctx, f.backend, machine)
	if err != nil {
		logger.Error("arcade failed", "err", err)
	}
	return err
}

// runBackend drives screen on the chosen backend. A terminal that cannot
// be set up or read maps to exitTerminal on either backend.
func runBackend(ctx context.Context, backend string, screen engine.Screen, opts ...tea.ProgramOption) error {
	var err error
	if backend == backendTcell {
		err = tcellterm.Run(ctx, screen)
	} else {
		err = tui.Run(ctx, screen, opts...)
	}
	if errors.Is(err, tui.ErrUnavailable) || errors.Is(err, tcellterm.ErrUnavailable) {
		return &exitError{code: exitTerminal, err: err}
	}
	return err
}

// interactiveLogger logs to the log file, or nowhere when it cannot be
// opened; the terminal belongs to the game.
func interactiveLogger(f *globalFlags) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeLog := func() {}
	if file, err := openLogFile(f.logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	} else {
		w = file
		closeLog = func() { _ = file.Close() }
	}

	logger, err := newLogger(w, f.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, _ = newLogger(w, "info")
	}
	return logger, closeLog
}
