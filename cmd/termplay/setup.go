package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/games/catalog"
	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "termplay",
		Level:           lvl,
	}), nil
}

// openLogFile opens the log for appending. The TUI owns stdout and
// stderr, so interactive runs never log to the terminal.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// runtime is everything a command needs besides the terminal. Peripheral
// failures degrade instead of aborting: settings fall back to defaults and
// a missing database leaves store nil.
type runtime struct {
	logger   *log.Logger
	reg      *registry.Registry
	configs  *config.Store
	settings config.Settings
	store    *storage.Store
	closers  []func()
}

// buildRegistry assembles descs, mapping a malformed table to its own exit
// code.
func buildRegistry(descs ...registry.Descriptor) (*registry.Registry, error) {
	reg, err := registry.New(descs...)
	if err != nil {
		return nil, &exitError{code: exitRegistry, err: err}
	}
	return reg, nil
}

func newRuntime(f *globalFlags, logger *log.Logger) (*runtime, error) {
	reg, err := buildRegistry(catalog.Descriptors()...)
	if err != nil {
		return nil, err
	}
	rt := &runtime{
		logger:  logger,
		reg:     reg,
		configs: config.NewStore(f.config),
	}

	settings, err := rt.configs.Load()
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "path", rt.configs.Path(), "err", err)
	}
	rt.settings = settings

	store, err := storage.Open(f.db)
	if err != nil {
		logger.Warn("scores database unavailable, scores will not be recorded", "path", f.db, "err", err)
	} else {
		rt.store = store
		rt.closers = append(rt.closers, func() {
			if err := store.Close(); err != nil {
				logger.Error("cannot close scores database", "err", err)
			}
		})
	}
	return rt, nil
}

// lookup resolves a game id, mapping a miss to the not-found exit code.
func (rt *runtime) lookup(id string) (registry.Descriptor, error) {
	return lookupGame(rt.reg, id)
}

func lookupGame(reg *registry.Registry, id string) (registry.Descriptor, error) {
	d, err := reg.Lookup(id)
	if errors.Is(err, registry.ErrNotFound) {
		return d, &exitError{
			code: exitNotFound,
			err:  fmt.Errorf("unknown game %q", id),
			hint: "Run 'termplay list' to see available games.",
		}
	}
	return d, err
}

func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
}
