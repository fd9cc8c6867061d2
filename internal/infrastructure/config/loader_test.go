package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ENV", "")
	return dir
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	dir := isolateXDG(t)

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, filepath.Join(dir, "config", "favicache", "config.toml"), mgr.ConfigFile())
	assert.FileExists(t, mgr.ConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(dir, "data", "favicache", "favicache.sqlite"), cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, time.Second, cfg.Favicon.Autosave.Delay())
	assert.Equal(t, 30*time.Second, cfg.Favicon.Autosave.MaxDelay())
	assert.Equal(t, []string{"dumb", "ftp", "file", "view-source"}, cfg.Favicon.IgnoredSchemes)
	assert.False(t, cfg.Privacy.PrivateMode)
}

func TestManager_LoadReadsFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[database]
path = "/tmp/icons.sqlite"

[favicon]
write_queue_size = 8
ignored_schemes = ["Data:", " about "]

[favicon.autosave]
delay_ms = 250
max_delay_ms = 1000

[privacy]
private_mode = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/tmp/icons.sqlite", cfg.Database.Path)
	assert.Equal(t, 8, cfg.Favicon.WriteQueueSize)
	assert.Equal(t, []string{"data", "about"}, cfg.Favicon.IgnoredSchemes)
	assert.Equal(t, 250*time.Millisecond, cfg.Favicon.Autosave.Delay())
	assert.True(t, cfg.Privacy.PrivateMode)
	// Unset keys keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("FAVICACHE_LOG_LEVEL", "debug")
	t.Setenv("FAVICACHE_PRIVATE_MODE", "true")
	t.Setenv("FAVICACHE_FAVICON_WRITE_QUEUE_SIZE", "42")

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Privacy.PrivateMode)
	assert.Equal(t, 42, cfg.Favicon.WriteQueueSize)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[favicon]\nwrite_queue_size = 0\n"), 0o600))

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "favicon.write_queue_size must be positive")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[favicon\n"), 0o600))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Favicon.IgnoredSchemes[0] = "changed"
	cfg.Privacy.PrivateMode = true

	fresh := mgr.Get()
	assert.Equal(t, "dumb", fresh.Favicon.IgnoredSchemes[0])
	assert.False(t, fresh.Privacy.PrivateMode)
}

func TestManager_GetBeforeLoad(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
