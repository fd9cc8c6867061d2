package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloads(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	mgr.Watch()
	mgr.Watch()

	require.NoError(t, os.WriteFile(path, []byte("[privacy]\nprivate_mode = true\n"), 0o600))

	select {
	case cfg := <-changed:
		require.True(t, cfg.Privacy.PrivateMode)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}
	require.True(t, mgr.Get().Privacy.PrivateMode)
}
