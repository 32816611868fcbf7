package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config is the persisted quota record. A config is valid only when Quota is
// positive and Plan is non-empty; anything else is treated as if no config
// existed at all, which routes the app back to setup.
type Config struct {
	Quota float64 `json:"quota"`
	Plan  string  `json:"plan"`
}

// Valid reports whether the record satisfies the config invariants.
func (c Config) Valid() bool {
	return c.Quota > 0 && c.Plan != ""
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "copilot-meter")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "copilot-meter")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Store reads and writes the config record at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore is bound to the per-user config location.
func DefaultStore() *Store {
	return NewStore(ConfigPath())
}

func (s *Store) Path() string { return s.path }

// Exists is a cheap probe used to tell a first run from a configured one.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns the persisted config. A missing file, unreadable file,
// malformed JSON, or a record failing validation all report false; the
// caller cannot tell them apart and is not meant to.
func (s *Store) Load() (Config, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Config{}, false
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	if !cfg.Valid() {
		return Config{}, false
	}
	return cfg, true
}

// Save replaces any prior record wholesale.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Delete removes the record. A file that is already gone is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting config: %w", err)
	}
	return nil
}
