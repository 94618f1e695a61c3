// Package config handles configuration loading and validation for fscs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

// defaultKeys provides extra gallery keys on top of the built-in bindings.
// User entries for the same action are appended, never replacing these.
var defaultKeys = map[string][]string{
	gallery.ActionFullscreen: {"enter"},
}

// Config holds the application configuration.
type Config struct {
	Theme       string              `yaml:"theme"`
	ContentPath string              `yaml:"content_path"` // empty uses the built-in club data
	AssetsDir   string              `yaml:"assets_dir"`   // root for "/images/..." locators and album globs
	Watch       bool                `yaml:"watch"`        // reload content when the file changes
	Keys        map[string][]string `yaml:"keys"`         // extra keys per gallery action
	Gallery     GalleryConfig       `yaml:"gallery"`
	OpenCommand string              `yaml:"open_command"` // defaults to open or xdg-open
}

// GalleryConfig tunes the lightbox presentation.
type GalleryConfig struct {
	ThumbnailWidth int  `yaml:"thumbnail_width"`
	RenderImages   bool `yaml:"render_images"` // draw local images as half-block art
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Keys:  map[string][]string{},
		Gallery: GalleryConfig{
			ThumbnailWidth: 12,
			RenderImages:   true,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned. Relative content and asset paths are
// resolved against the config file's directory.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.resolvePaths(filepath.Dir(configPath))
		}
	}

	cfg.Keys = mergeKeys(defaultKeys, cfg.Keys)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Gallery.ThumbnailWidth == 0 {
		c.Gallery.ThumbnailWidth = defaults.Gallery.ThumbnailWidth
	}
}

func (c *Config) resolvePaths(dir string) {
	if c.ContentPath != "" && !filepath.IsAbs(c.ContentPath) {
		c.ContentPath = filepath.Join(dir, c.ContentPath)
	}
	if c.AssetsDir != "" && !filepath.IsAbs(c.AssetsDir) {
		c.AssetsDir = filepath.Join(dir, c.AssetsDir)
	}
}

// mergeKeys merges user keys into defaults. Keys for the same action are
// appended in order with duplicates dropped.
func mergeKeys(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for action, keys := range defaults {
		result[action] = slices.Clone(keys)
	}

	for action, keys := range user {
		for _, k := range keys {
			if !slices.Contains(result[action], k) {
				result[action] = append(result[action], k)
			}
		}
	}

	return result
}

// KeyMap builds the gallery key map with the configured extra keys applied.
// Actions are bound in sorted order so the result is deterministic.
func (c *Config) KeyMap() gallery.KeyMap {
	km := gallery.DefaultKeyMap()
	for _, action := range gallery.Actions {
		if keys := c.Keys[action]; len(keys) > 0 {
			km.Bind(action, keys...)
		}
	}
	return km
}

// Opener returns the command used to open links and images.
func (c *Config) Opener(goos string) string {
	if c.OpenCommand != "" {
		return c.OpenCommand
	}
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}
