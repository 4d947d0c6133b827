package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/platform/tui"
	"github.com/vovakirdan/termplay/internal/storage"
)

func newListCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available games",
		Long:  `Shows every game in menu order with how often it was scored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(os.Stderr, f.logLevel)
			if err != nil {
				return err
			}
			rt, err := newRuntime(f, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			var stats map[string]*storage.GameStats
			if rt.store != nil {
				stats, err = rt.store.AllGameStats(cmd.Context())
				if err != nil {
					logger.Warn("cannot read game stats", "err", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.GameReport(rt.reg.List(), stats))
			fmt.Fprintln(out, "Run 'termplay play <id>' to play a game.")
			return nil
		},
	}
}
