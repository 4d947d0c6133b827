package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/termplay/internal/app"
	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/engine"
	"github.com/vovakirdan/termplay/internal/registry"
)

type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is where the host key lives. It is generated on first
	// start. Empty means ~/.termplay/host_key.
	HostKeyPath string

	// IdleTimeout closes sessions without input for this long.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SessionDeps are shared by every session. The registry and the score
// store are safe for concurrent use; everything else is per session.
type SessionDeps struct {
	Registry *registry.Registry
	Scores   app.ScoreStore
	Settings config.Settings
	Logger   *log.Logger
}

// SSHServer serves one independent arcade per SSH session.
type SSHServer struct {
	config SSHServerConfig
	deps   SessionDeps
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer prepares the host key directory and the Wish server.
func NewSSHServer(cfg SSHServerConfig, deps SessionDeps) (*SSHServer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "termplay-ssh",
		})
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".termplay", "host_key")
	}
	hostKeyPath = config.ExpandHome(hostKeyPath)
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		deps:   deps,
		logger: logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// NewSessionMachine builds the state machine for one remote player. Remote
// sessions never play audio and keep settings changes to themselves.
func (s *SSHServer) NewSessionMachine(user, sessionID string) *app.Machine {
	return app.New(app.Options{
		Registry: s.deps.Registry,
		Audio:    audio.Silent{},
		Scores:   s.deps.Scores,
		Settings: s.deps.Settings,
		Logger:   s.logger.With("session", sessionID),
		Player:   user,
		Greeting: fmt.Sprintf("Welcome, %s!", user),
	})
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}
	id, _ := sess.Context().Value(sessionIDKey{}).(string)

	var screen engine.Screen = s.NewSessionMachine(sess.User(), id)
	model := NewModel(engine.NewScheduler(screen), pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware tags each session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)
		start := time.Now()

		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
