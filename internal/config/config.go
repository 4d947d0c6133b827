// Package config loads and saves the user's termplay settings as YAML.
package config

// Settings is the persisted user configuration.
type Settings struct {
	Audio      Audio            `yaml:"audio"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Player     string           `yaml:"player,omitempty"`
}

// Audio holds playback switches and volumes. Volumes are in [0, 1].
type Audio struct {
	Enabled       bool    `yaml:"enabled"`
	MusicEnabled  bool    `yaml:"music_enabled"`
	MasterVolume  float64 `yaml:"master_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
	MusicVolume   float64 `yaml:"music_volume"`
}

// EffectsGain is the final multiplier applied to sound effects.
func (a Audio) EffectsGain() float64 {
	if !a.Enabled {
		return 0
	}
	return a.MasterVolume * a.EffectsVolume
}

// MusicGain is the final multiplier applied to background music.
func (a Audio) MusicGain() float64 {
	if !a.Enabled || !a.MusicEnabled {
		return 0
	}
	return a.MasterVolume * a.MusicVolume
}

// Default returns the built-in settings used when nothing else is available.
func Default() Settings {
	return Settings{
		Audio: Audio{
			Enabled:       true,
			MusicEnabled:  true,
			MasterVolume:  0.8,
			EffectsVolume: 0.7,
			MusicVolume:   0.3,
		},
		Difficulty: DifficultyNormal,
	}
}

// Normalize clamps volumes into range and replaces an unknown difficulty
// with the default preset.
func (s Settings) Normalize() Settings {
	s.Audio.MasterVolume = clampF(s.Audio.MasterVolume, 0, 1)
	s.Audio.EffectsVolume = clampF(s.Audio.EffectsVolume, 0, 1)
	s.Audio.MusicVolume = clampF(s.Audio.MusicVolume, 0, 1)
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		s.Difficulty = DifficultyNormal
	}
	return s
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
