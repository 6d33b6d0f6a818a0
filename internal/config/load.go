package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads defaults overlaid with a single YAML file, without flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside a note.
func (c *Config) Validate() error {
	var errs []error
	p := c.Palette
	if p.NoteCount <= 0 {
		errs = append(errs, fmt.Errorf("palette.note_count must be positive, got %d", p.NoteCount))
	}
	if len(p.Colors) < p.NoteCount {
		errs = append(errs, fmt.Errorf("palette.colors has %d entries, need %d", len(p.Colors), p.NoteCount))
	}
	if c.Animation.HitDuration <= 0 {
		errs = append(errs, fmt.Errorf("animation.hit_duration must be positive, got %s", c.Animation.HitDuration))
	}
	if c.Animation.HitFrames <= 0 {
		errs = append(errs, fmt.Errorf("animation.hit_frames must be positive, got %d", c.Animation.HitFrames))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./tonefield.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Tonefield")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Tonefield")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tonefield")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tonefield")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
