package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/platform/tui"
)

func newServeCmd(f *globalFlags) *cobra.Command {
	def := tui.DefaultSSHServerConfig()
	var (
		addr        string
		hostKey     string
		idleMinutes int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the arcade SSH server",
		Long: `Start an SSH server that gives every connection its own arcade.

All sessions share one leaderboard; scores are recorded under the SSH
user name. Remote sessions have no audio.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termplay/host_key

Examples:
  termplay serve
  termplay serve --ssh :2222
  termplay serve --host-key ./host_key --db ./scores.db

Users can connect with:
  ssh localhost -p 23234`,
		Args: cobra.NoArgs,
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

			deps := tui.SessionDeps{
				Registry: rt.reg,
				Settings: rt.settings,
				Logger:   logger.WithPrefix("termplay-ssh"),
			}
			if rt.store != nil {
				deps.Scores = rt.store
			}

			cfg := tui.SSHServerConfig{
				Address:     addr,
				HostKeyPath: hostKey,
				IdleTimeout: time.Duration(idleMinutes) * time.Minute,
			}
			server, err := tui.NewSSHServer(cfg, deps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Starting termplay SSH server on %s\n", server.Addr())
			fmt.Fprintln(out, "Press Ctrl+C to stop")
			return server.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "ssh", def.Address, "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().IntVar(&idleMinutes, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	return cmd
}
