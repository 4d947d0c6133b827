package config

import "fmt"

// DifficultyPreset represents a named difficulty level. Games that have
// tunable parameters pick their own values per preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

var presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range presets {
		if string(p) == s {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// Next cycles easy -> normal -> hard -> easy.
func (d DifficultyPreset) Next() DifficultyPreset {
	for i, p := range presets {
		if p == d {
			return presets[(i+1)%len(presets)]
		}
	}
	return DifficultyNormal
}

// Prev cycles in the opposite direction to Next.
func (d DifficultyPreset) Prev() DifficultyPreset {
	for i, p := range presets {
		if p == d {
			return presets[(i+len(presets)-1)%len(presets)]
		}
	}
	return DifficultyNormal
}

// Pick returns the value matching the preset.
func Pick[T any](d DifficultyPreset, easy, normal, hard T) T {
	switch d {
	case DifficultyEasy:
		return easy
	case DifficultyHard:
		return hard
	default:
		return normal
	}
}
