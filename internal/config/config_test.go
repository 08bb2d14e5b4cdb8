package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncerrors "github.com/zawatton21/org-excalidraw/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Directories, cfg.Directories)
	assert.Equal(t, def.Markers, cfg.Markers)
	assert.Equal(t, def.Converter, cfg.Converter)
	assert.Equal(t, def.Naming, cfg.Naming)
	assert.Equal(t, def.Watch, cfg.Watch)
}

func TestLoadFromConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
directories:
  drawings: /data/drawings
  images: /data/svg
  documents: /data/org
markers:
  strict: true
naming:
  use_uuid: false
  prefix: diagram-
watch:
  debounce_ms: 500
`), 0o644))

	viper.SetConfigFile(cfgPath)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/drawings", cfg.Directories.Drawings)
	assert.Equal(t, "/data/svg", cfg.Directories.Images)
	assert.Equal(t, "/data/org", cfg.Directories.Documents)
	assert.True(t, cfg.Markers.Strict)
	assert.False(t, cfg.Naming.UseUUID)
	assert.Equal(t, "diagram-", cfg.Naming.Prefix)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)

	// Unset keys still fall back to defaults.
	assert.Equal(t, Default().Markers.Begin, cfg.Markers.Begin)
	assert.Equal(t, Default().Converter.Command, cfg.Converter.Command)
}

func TestValidate(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"drawings", "images", "org"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}

	cfg := Default()
	cfg.Directories.Drawings = filepath.Join(root, "drawings")
	cfg.Directories.Images = filepath.Join(root, "images")
	cfg.Directories.Documents = filepath.Join(root, "org")

	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "drawings"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))

	cfg := Default()
	cfg.Directories.Drawings = filepath.Join(root, "drawings")
	cfg.Directories.Images = filepath.Join(root, "images")
	cfg.Directories.Documents = filepath.Join(root, "org") // never created

	err := cfg.Validate()
	require.Error(t, err)

	var se *syncerrors.SyncError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, syncerrors.ErrorTypeConfig, se.Type)
	assert.Equal(t, syncerrors.CodeDirectoryMissing, se.Code)
	assert.False(t, syncerrors.IsRecoverable(err))
}

func TestValidateFileAsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "org"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "drawings"), []byte("x"), 0o644))

	cfg := Default()
	cfg.Directories.Drawings = filepath.Join(root, "drawings")
	cfg.Directories.Images = filepath.Join(root, "images")
	cfg.Directories.Documents = filepath.Join(root, "org")

	assert.Error(t, cfg.Validate())
}

func TestDebounceDuration(t *testing.T) {
	w := WatchConfig{DebounceMs: 250}
	assert.Equal(t, "250ms", w.Debounce().String())
}
