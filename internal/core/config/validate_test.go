package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_collects_field_errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	cfg.Gallery.ThumbnailWidth = 100
	cfg.Keys = map[string][]string{
		"zoom":  {"z"},
		"prev":  {""},
		"close": {"f"},
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{
		"theme",
		"gallery.thumbnail_width",
		"keys.zoom",
		"keys.prev[0]",
		"keys.close[0]",
	}, fields)
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(content, []byte("name: x\n"), 0o644))

	cfg := DefaultConfig()
	cfg.ContentPath = content
	cfg.AssetsDir = dir

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_file_access(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.ContentPath = dir
	cfg.AssetsDir = notDir
	cfg.OpenCommand = "definitely-not-a-real-opener-xyz"

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	byField := make(map[string]string)
	for _, fe := range fieldErrs {
		byField[fe.Field] = fe.Err.Error()
	}
	assert.Contains(t, byField["config_file"], "is a directory")
	assert.Contains(t, byField["content_path"], "is a directory")
	assert.Contains(t, byField["assets_dir"], "not a directory")
	assert.Contains(t, byField["open_command"], "executable not found")
}

func TestValidateDeep_missing_config_file_is_fine(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "none.yaml")))
}
