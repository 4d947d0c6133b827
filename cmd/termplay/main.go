// termplay is a terminal arcade: a menu of small games with local high
// scores, playable in the local terminal or over SSH.
//
// Usage:
//
//	termplay                 - Open the arcade menu
//	termplay play <game>     - Launch a game directly
//	termplay list            - List available games
//	termplay scores [game]   - Show high scores
//	termplay serve           - Start the SSH server
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitTerminal = 2
	exitNotFound = 3
	exitRegistry = 4
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
	hint string
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) && ee.hint != "" {
			fmt.Fprintln(os.Stderr, ee.hint)
		}
	}
	os.Exit(exitCode(err))
}
