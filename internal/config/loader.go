package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Store reads and writes Settings.
//
// Load search order: custom path -> ~/.termplay/config.yaml ->
// ./configs/termplay.yaml -> embedded default. Save always writes to the
// custom path when one was given, otherwise to the user file.
type Store struct {
	custom string
	user   string
	local  string
}

// NewStore creates a store. customPath may be empty.
func NewStore(customPath string) *Store {
	return &Store{
		custom: customPath,
		user:   userConfigPath(fileName),
		local:  filepath.Join("configs", "termplay.yaml"),
	}
}

// Path is where Save writes.
func (s *Store) Path() string {
	if s.custom != "" {
		return s.custom
	}
	return s.user
}

// Load returns the first readable settings file in search order.
//
// It always returns usable settings. The error is non-nil when a file
// existed but could not be read or parsed; the caller decides whether to
// log it. Missing files are not errors.
func (s *Store) Load() (Settings, error) {
	if s.custom != "" {
		cfg, err := readFile(s.custom)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return defaults(), nil
			}
			return defaults(), err
		}
		return cfg, nil
	}

	var firstErr error
	for _, p := range []string{s.user, s.local} {
		if p == "" {
			continue
		}
		cfg, err := readFile(p)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return defaults(), firstErr
}

// Save writes settings as YAML, creating the parent directory if needed.
func (s *Store) Save(cfg Settings) error {
	path := s.Path()
	if path == "" {
		return errors.New("config: no writable settings path")
	}
	data, err := yaml.Marshal(cfg.Normalize())
	if err != nil {
		return fmt.Errorf("config: failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

func readFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	// Start from defaults so keys missing in the file keep their defaults.
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg.Normalize(), nil
}

// defaults decodes the embedded YAML, falling back to the hardcoded values.
func defaults() Settings {
	cfg := Default()
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return Default()
	}
	return cfg.Normalize()
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termplay", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
