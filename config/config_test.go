package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := `
limits:
  max_key_len: 48
  max_value_len: 32
archive:
  data_dir: my-archive
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path, dir)
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.MaxKeyLen)
	assert.Equal(t, 32, cfg.MaxValueLen)
	assert.Equal(t, filepath.Join(dir, "my-archive"), cfg.GetArchiveDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0600))

	cfg, err := LoadConfig(path, dir)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxKeyLen)
	assert.Equal(t, 64, cfg.MaxValueLen)
	assert.Equal(t, filepath.Join(dir, "archive"), cfg.GetArchiveDir())
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yml"), dir)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("limits:\n  max_key_len: 2\n"), 0600))
	_, err = LoadConfig(bad, dir)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	cfg := DefaultConfig()
	cfg.MaxValueLen = 50
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path, dir)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.MaxValueLen)
}
