// Package registry defines the contract every game implements and the
// read-only catalog the runtime uses to list and launch games.
//
// A Registry is built once at startup from an ordered list of descriptors
// and never changes afterwards, so it can be shared freely between
// goroutines (the SSH server hands the same registry to every session).
package registry

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
)

// DefaultTickRate is used for games that do not implement TickRater.
const DefaultTickRate = 250 * time.Millisecond

// ErrNotFound is returned when an id is not registered.
var ErrNotFound = errors.New("game not found")

// Game is the contract every playable game implements.
//
// The runtime calls HandleKey and Update from a single goroutine and never
// concurrently, so implementations need no locking. Draw must not change
// simulation state: two Draw calls with nothing in between produce the
// same frame.
type Game interface {
	// Name returns the registry id of the game.
	Name() string

	// Description returns a one-line summary for menus.
	Description() string

	// HandleKey consumes one key press.
	HandleKey(ev core.KeyEvent) core.GameAction

	// Update advances the simulation by one tick.
	Update() core.GameAction

	// Draw renders the current state into dst, which is pre-cleared and
	// sized to the terminal.
	Draw(dst *core.Screen)
}

// TickRater is implemented by games that want a tick interval other than
// DefaultTickRate. It may change over the life of the game.
type TickRater interface {
	TickRate() time.Duration
}

// Scorer is implemented by games that report a leaderboard result.
type Scorer interface {
	Result() core.Result
}

// TickRate returns g's tick interval, falling back to DefaultTickRate.
func TickRate(g Game) time.Duration {
	if tr, ok := g.(TickRater); ok {
		if d := tr.TickRate(); d > 0 {
			return d
		}
	}
	return DefaultTickRate
}

// ResultOf returns g's result, or false when g keeps no score.
func ResultOf(g Game) (core.Result, bool) {
	if s, ok := g.(Scorer); ok {
		return s.Result(), true
	}
	return core.Result{}, false
}

// Env carries the collaborators a game may use.
type Env struct {
	// Audio is never nil once passed through Normalize.
	Audio audio.Player
	// Seed drives the game's random source. Zero seeds from the clock.
	Seed int64
	// Difficulty tunes games that have presets.
	Difficulty config.DifficultyPreset
}

// Normalize fills in defaults for unset fields.
func (e Env) Normalize() Env {
	if e.Audio == nil {
		e.Audio = audio.Silent{}
	}
	if e.Seed == 0 {
		e.Seed = time.Now().UnixNano()
	}
	if e.Difficulty == "" {
		e.Difficulty = config.DifficultyNormal
	}
	return e
}

// Factory creates a fresh game instance.
type Factory func(env Env) Game

// Descriptor is an immutable catalog entry.
type Descriptor struct {
	ID          string
	Title       string
	Description string
	Music       audio.Track
	New         Factory
}

// Registry is an ordered, read-only catalog of games.
type Registry struct {
	order []Descriptor
	index map[string]int
}

// New builds a registry from descriptors in display order. Empty ids,
// duplicate ids and missing factories are rejected.
func New(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		order: make([]Descriptor, 0, len(descs)),
		index: make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if d.ID == "" {
			return nil, errors.New("registry: descriptor with empty id")
		}
		if d.New == nil {
			return nil, fmt.Errorf("registry: game %q has no factory", d.ID)
		}
		if _, exists := r.index[d.ID]; exists {
			return nil, fmt.Errorf("registry: game %q already registered", d.ID)
		}
		r.index[d.ID] = len(r.order)
		r.order = append(r.order, d)
	}
	return r, nil
}

// List returns descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup finds a descriptor by exact, case-sensitive id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("registry: %w: %q", ErrNotFound, id)
	}
	return r.order[i], nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Launch creates a new instance of the game with the given id. Every call
// returns a fresh instance.
func (r *Registry) Launch(id string, env Env) (Game, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.New(env.Normalize()), nil
}
