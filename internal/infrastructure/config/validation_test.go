package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "empty level",
			mutate:  func(c *Config) { c.Logging.Level = "" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "zero delay",
			mutate:  func(c *Config) { c.Favicon.Autosave.DelayMs = 0 },
			wantErr: "favicon.autosave.delay_ms",
		},
		{
			name: "max below delay",
			mutate: func(c *Config) {
				c.Favicon.Autosave.DelayMs = 500
				c.Favicon.Autosave.MaxDelayMs = 100
			},
			wantErr: "max_delay_ms must not be less than delay_ms",
		},
		{
			name:    "negative lookup cache",
			mutate:  func(c *Config) { c.Favicon.LookupCacheBytes = -1 },
			wantErr: "favicon.lookup_cache_bytes",
		},
		{
			name:    "empty queue",
			mutate:  func(c *Config) { c.Favicon.WriteQueueSize = -1 },
			wantErr: "favicon.write_queue_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig_IgnoredSchemes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Favicon.IgnoredSchemes = []string{"FTP:", "", "  ", "chrome"}

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"ftp", "chrome"}, cfg.Favicon.IgnoredSchemes)
}
