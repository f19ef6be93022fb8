package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// InputConfig selects which MIDI input ports the TUI listens to
type InputConfig struct {
	// Ports whose name contains any of these (case-insensitive) are used.
	// Empty means all input ports.
	PortFilters []string `json:"portFilters,omitempty"`
	AutoConnect bool     `json:"autoConnect"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	PalettePath  string `json:"palettePath,omitempty"` // GIMP .gpl file
	HistoryLimit int    `json:"historyLimit,omitempty"`
	LastInput    string `json:"lastInput,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Input InputConfig `json:"input"`
	UI    UIConfig    `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			AutoConnect: true,
		},
		UI: UIConfig{
			HistoryLimit: 20,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midinote"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.UI.HistoryLimit <= 0 {
		cfg.UI.HistoryLimit = DefaultConfig().UI.HistoryLimit
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// PortEnv names an environment variable holding one extra port filter
const PortEnv = "MIDINOTE_PORT"

// ApplyEnv applies overrides from the environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if filter := strings.TrimSpace(getenv(PortEnv)); filter != "" {
		c.AddPortFilter(filter)
	}
}

// MatchPort reports whether an input port should be listened to
func (c *Config) MatchPort(portName string) bool {
	if len(c.Input.PortFilters) == 0 {
		return true
	}
	name := strings.ToLower(portName)
	for _, f := range c.Input.PortFilters {
		if strings.Contains(name, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// AddPortFilter adds a filter unless an equal one exists
func (c *Config) AddPortFilter(filter string) {
	for _, f := range c.Input.PortFilters {
		if strings.EqualFold(f, filter) {
			return
		}
	}
	c.Input.PortFilters = append(c.Input.PortFilters, filter)
}
