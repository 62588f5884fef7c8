// Package config loads tool settings from lucid.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config mirrors the lucid.toml layout.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig holds the [render] section.
type RenderConfig struct {
	Width   int    `toml:"width"`
	Color   string `toml:"color"`
	Context int    `toml:"context"`
	Locale  string `toml:"locale"`
}

// Default returns the settings used when no lucid.toml is found.
// Width 0 means detect from the terminal.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:   0,
			Color:   "auto",
			Context: 2,
		},
	}
}

// Find walks up from startDir to locate lucid.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lucid.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the file at path over the defaults, so absent keys keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest lucid.toml. When none exists it
// returns the defaults and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) validate() error {
	switch c.Render.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid render.color value %q (expected auto|on|off)", c.Render.Color)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("invalid render.width value %d (must not be negative)", c.Render.Width)
	}
	if c.Render.Context < 0 {
		return fmt.Errorf("invalid render.context value %d (must not be negative)", c.Render.Context)
	}
	if _, err := c.Render.ParseLocale(); err != nil {
		return err
	}
	return nil
}

// ParseLocale resolves the locale key to a language tag. An empty key
// means the undetermined language.
func (r RenderConfig) ParseLocale() (language.Tag, error) {
	if r.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(r.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid render.locale value %q: %w", r.Locale, err)
	}
	return tag, nil
}
