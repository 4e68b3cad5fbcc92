package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the evemux configuration. The core packages treat a loaded
// Config as a read-only value; only the config commands mutate and save it.
type Config struct {
	// DisplayWidth/DisplayHeight are global fallback dimensions used by the
	// layout engine when no monitor topology is available.
	DisplayWidth  int `yaml:"display_width"`
	DisplayHeight int `yaml:"display_height"`

	// PanelHeight is reserved at the bottom of every placement for desktop
	// panels. Zero means no reservation.
	PanelHeight int `yaml:"panel_height"`

	// EveWidth/EveHeight are the target client dimensions in centered mode.
	EveWidth  int `yaml:"eve_width"`
	EveHeight int `yaml:"eve_height"`

	// PrimaryCharacter selects the primary instance by exact character name
	// (title without the "EVE - " prefix). Empty means no primary.
	PrimaryCharacter string `yaml:"primary_character,omitempty"`

	// PrimaryMonitor is the monitor the primary instance is placed on.
	// Empty or unknown names fall back to the first monitor.
	PrimaryMonitor string `yaml:"primary_monitor,omitempty"`

	// FullscreenStack fills the whole target monitor (minus PanelHeight)
	// instead of centering a fixed-width region.
	FullscreenStack bool `yaml:"fullscreen_stack"`

	// MinimizeInactive minimizes all non-current EVE windows after a cycle
	// step.
	MinimizeInactive bool `yaml:"minimize_inactive"`
}

// Default returns a config populated with the detected display size and
// conventional client dimensions.
func Default() *Config {
	w, h := DetectDisplaySize()
	return &Config{
		DisplayWidth:  w,
		DisplayHeight: h,
		PanelHeight:   30,
		EveWidth:      2560,
		EveHeight:     1440,
	}
}

// Dir returns the evemux config directory (~/.config/evemux).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "evemux"), nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from the standard location, creating it with
// defaults on first run.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config from an explicit path, creating it with
// defaults when missing.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if saveErr := cfg.SaveTo(path); saveErr != nil {
			return nil, fmt.Errorf("failed to write default config: %w", saveErr)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the config to the standard location.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) fillDefaults() {
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		c.DisplayWidth, c.DisplayHeight = 1920, 1080
	}
	if c.EveWidth <= 0 {
		c.EveWidth = c.DisplayWidth
	}
	if c.EveHeight <= 0 {
		c.EveHeight = c.DisplayHeight
	}
	if c.PanelHeight < 0 {
		c.PanelHeight = 0
	}
}
