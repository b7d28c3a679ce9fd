package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.NotEmpty(t, cfg.StatePath)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://bank.example.com
state_path: /tmp/teller-state.json
log_path: /tmp/teller.log
colors:
  user_msg: 6
  accent: 13
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://bank.example.com", cfg.BaseURL)
	assert.Equal(t, "/tmp/teller-state.json", cfg.StatePath)
	assert.Equal(t, "/tmp/teller.log", cfg.LogPath)

	theme := cfg.Theme()
	assert.Equal(t, 6, theme.UserMsg)
	assert.Equal(t, 13, theme.Accent)
	// Untouched colors keep the defaults.
	assert.Equal(t, teller.DefaultTheme().Error, theme.Error)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://bank.example.com\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://bank.example.com", cfg.BaseURL)
	assert.Equal(t, config.Default().StatePath, cfg.StatePath)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
