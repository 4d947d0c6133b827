package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config   string
	db       string
	seed     int64
	backend  string
	logFile  string
	logLevel string
	player   string
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func newRootCmd() *cobra.Command {
	f := &globalFlags{}

	root := &cobra.Command{
		Use:   "termplay",
		Short: "termplay - a terminal arcade",
		Long: `termplay is a small arcade that runs in your terminal: Tetris, Snake,
Pong, 2048, Minesweeper, Breakout and Conway's Life, with local high
scores, synthesized sound and an SSH server for remote play.

Run without a command to open the menu.

Examples:
  termplay
  termplay play tetris
  termplay play snake --backend tcell
  termplay scores tetris
  termplay serve --ssh :2222`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runArcade(cmd.Context(), f, "")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "Path to settings YAML (default ~/.termplay/config.yaml)")
	pf.StringVar(&f.db, "db", "~/.termplay/scores.db", "Path to scores database")
	pf.Int64Var(&f.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&f.backend, "backend", backendTea, "Terminal backend: tea or tcell")
	pf.StringVar(&f.logFile, "log-file", "~/.termplay/termplay.log", "Log file path")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&f.player, "player", defaultPlayer(), "Name recorded with high scores")

	root.AddCommand(
		newPlayCmd(f),
		newListCmd(f),
		newScoresCmd(f),
		newServeCmd(f),
	)
	return root
}

func (f *globalFlags) validateBackend() error {
	switch f.backend {
	case backendTea, backendTcell:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", f.backend, backendTea, backendTcell)
	}
}
