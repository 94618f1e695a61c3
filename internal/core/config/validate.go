package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"sort"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

const (
	minThumbnailWidth = 6
	maxThumbnailWidth = 40
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("gallery.thumbnail_width", c.Gallery.ThumbnailWidth, thumbnailWidth),
		c.validateKeys(),
	)
}

// ValidateDeep performs Validate plus file accessibility checks. The
// configPath argument is the config file location (empty skips that check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("content_path", c.ContentPath, isFileOrEmpty),
		criterio.Run("assets_dir", c.AssetsDir, isDirectoryOrEmpty),
		criterio.Run("open_command", c.OpenCommand, executableOrEmpty),
	)
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func thumbnailWidth(w int) error {
	if w < minThumbnailWidth || w > maxThumbnailWidth {
		return fmt.Errorf("must be between %d and %d", minThumbnailWidth, maxThumbnailWidth)
	}
	return nil
}

// validateKeys checks action names and rejects a key bound to two actions.
func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	owner := make(map[string]string)
	for _, km := range builtinKeys() {
		for _, k := range km.keys {
			owner[k] = km.action
		}
	}

	for _, action := range actions {
		field := fmt.Sprintf("keys.%s", action)
		if !slices.Contains(gallery.Actions, action) {
			errs = errs.Append(field, fmt.Errorf("unknown action %q (want one of %s)", action, strings.Join(gallery.Actions, ", ")))
			continue
		}
		for i, k := range c.Keys[action] {
			if strings.TrimSpace(k) == "" {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), errors.New("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != action {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("key %q is already bound to %s", k, prev))
				continue
			}
			owner[k] = action
		}
	}

	return errs.ToError()
}

type actionKeys struct {
	action string
	keys   []string
}

func builtinKeys() []actionKeys {
	km := gallery.DefaultKeyMap()
	return []actionKeys{
		{gallery.ActionNext, km.Next.Keys()},
		{gallery.ActionPrev, km.Prev.Keys()},
		{gallery.ActionClose, km.Close.Keys()},
		{gallery.ActionFullscreen, km.Fullscreen.Keys()},
		{"thumbnail", km.Thumbnail.Keys()},
	}
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isFileOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return errors.New("is a directory, not a file")
	}
	return nil
}

func isDirectoryOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}

func executableOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}
