package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/platform/tui"
	"github.com/vovakirdan/termplay/internal/storage"
)

func newScoresCmd(f *globalFlags) *cobra.Command {
	var clearScores bool

	cmd := &cobra.Command{
		Use:   "scores [game]",
		Short: "Show high scores",
		Long: `Display the top 10 scores for a game, or a summary of every game when
no game is given. With --clear the scores are deleted instead.

Examples:
  termplay scores
  termplay scores tetris
  termplay scores snake --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(os.Stderr, f.logLevel)
			if err != nil {
				return err
			}
			rt, err := newRuntime(f, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.store == nil {
				return errors.New("scores database unavailable")
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if clearScores {
					if err := rt.store.ClearAll(ctx); err != nil {
						return err
					}
					fmt.Fprintln(out, "All scores cleared.")
					return nil
				}
				stats, err := rt.store.AllGameStats(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(out, tui.GameReport(rt.reg.List(), stats))
				return nil
			}

			desc, err := rt.lookup(args[0])
			if err != nil {
				return err
			}
			if clearScores {
				if err := rt.store.ClearScores(ctx, desc.ID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Scores for %s cleared.\n", desc.Title)
				return nil
			}

			entries, err := rt.store.TopScores(ctx, desc.ID, storage.TopN)
			if err != nil {
				return err
			}
			fmt.Fprint(out, tui.ScoreReport(desc.Title, entries))
			if len(entries) == 0 {
				fmt.Fprintf(out, "Play 'termplay play %s' to set the first high score!\n", desc.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearScores, "clear", false, "Delete the scores instead of showing them")
	return cmd
}
