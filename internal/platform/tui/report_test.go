package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

func TestScoreReport(t *testing.T) {
	out := ScoreReport("Snake", []storage.ScoreEntry{
		{Player: "alice", Score: 420, Level: 3, Duration: 95 * time.Second, CreatedAt: time.Now()},
		{Player: "bob", Score: 120, Level: 1, Duration: time.Minute, CreatedAt: time.Now()},
	})
	assert.Contains(t, out, "HIGH SCORES - Snake")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "420")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "1m35s")
}

func TestScoreReportEmpty(t *testing.T) {
	assert.Contains(t, ScoreReport("Pong", nil), "No scores recorded yet.")
}

func TestGameReport(t *testing.T) {
	descs := []registry.Descriptor{
		{ID: "snake", Title: "Snake", Description: "Eat and grow"},
		{ID: "life", Title: "Life", Description: "Cellular automaton"},
	}
	out := GameReport(descs, map[string]*storage.GameStats{
		"snake": {GameID: "snake", GamesCount: 3, HighScore: 77},
	})
	assert.Contains(t, out, "snake")
	assert.Contains(t, out, "Cellular automaton")
	assert.Contains(t, out, "77")
}
