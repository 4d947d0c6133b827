// Package catalog assembles the built-in games into a registry.
package catalog

import (
	"github.com/vovakirdan/termplay/internal/games/breakout"
	"github.com/vovakirdan/termplay/internal/games/life"
	"github.com/vovakirdan/termplay/internal/games/minesweeper"
	"github.com/vovakirdan/termplay/internal/games/pong"
	"github.com/vovakirdan/termplay/internal/games/snake"
	"github.com/vovakirdan/termplay/internal/games/t2048"
	"github.com/vovakirdan/termplay/internal/games/tetris"
	"github.com/vovakirdan/termplay/internal/registry"
)

// Descriptors returns every built-in game in menu order.
func Descriptors() []registry.Descriptor {
	return []registry.Descriptor{
		snake.Descriptor(),
		tetris.Descriptor(),
		pong.Descriptor(),
		t2048.Descriptor(),
		minesweeper.Descriptor(),
		breakout.Descriptor(),
		life.Descriptor(),
	}
}

// New returns the registry of built-in games. The ids are fixed, so an
// error here is a programming mistake.
func New() *registry.Registry {
	r, err := registry.New(Descriptors()...)
	if err != nil {
		panic(err)
	}
	return r
}
