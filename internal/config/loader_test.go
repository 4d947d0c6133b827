package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	assert.Equal(t, Default(), defaults())
}

func TestLoadMissingCustomFileFallsBackToDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCorruptFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio: [this is: not valid"), 0o644))

	cfg, err := NewStore(path).Load()
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg, "corrupt settings must degrade to defaults")
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio:\n  music_enabled: false\n"), 0o644))

	cfg, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.False(t, cfg.Audio.MusicEnabled)
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.8, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, DifficultyNormal, cfg.Difficulty)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	store := NewStore(path)

	want := Default()
	want.Audio.Enabled = false
	want.Audio.MusicVolume = 0.5
	want.Difficulty = DifficultyHard
	want.Player = "ana"
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNormalizeClampsVolumes(t *testing.T) {
	s := Default()
	s.Audio.MasterVolume = 3
	s.Audio.MusicVolume = -1
	s.Difficulty = "nightmare"

	n := s.Normalize()
	assert.Equal(t, 1.0, n.Audio.MasterVolume)
	assert.Equal(t, 0.0, n.Audio.MusicVolume)
	assert.Equal(t, DifficultyNormal, n.Difficulty)
}

func TestGains(t *testing.T) {
	a := Default().Audio
	assert.InDelta(t, 0.56, a.EffectsGain(), 1e-9)
	assert.InDelta(t, 0.24, a.MusicGain(), 1e-9)

	a.MusicEnabled = false
	assert.Zero(t, a.MusicGain())
	assert.NotZero(t, a.EffectsGain())

	a.Enabled = false
	assert.Zero(t, a.EffectsGain())
}

func TestDifficultyCycle(t *testing.T) {
	assert.Equal(t, DifficultyHard, DifficultyNormal.Next())
	assert.Equal(t, DifficultyEasy, DifficultyHard.Next())
	assert.Equal(t, DifficultyHard, DifficultyEasy.Prev())
	assert.Equal(t, 30, Pick(DifficultyHard, 9, 16, 30))

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)
}
