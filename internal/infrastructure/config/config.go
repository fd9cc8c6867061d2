// Package config loads and validates favicache configuration.
package config

import "time"

// Config is the complete favicache configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Favicon  FaviconConfig  `mapstructure:"favicon" toml:"favicon" json:"favicon"`
	Privacy  PrivacyConfig  `mapstructure:"privacy" toml:"privacy" json:"privacy"`
}

// DatabaseConfig holds icon store settings.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty means $XDG_DATA_HOME/favicache/favicache.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// FaviconConfig holds icon cache settings.
type FaviconConfig struct {
	Autosave AutosaveConfig `mapstructure:"autosave" toml:"autosave" json:"autosave"`
	// WriteQueueSize bounds pending store writes; extra writes are dropped.
	WriteQueueSize int `mapstructure:"write_queue_size" toml:"write_queue_size" json:"write_queue_size" jsonschema:"minimum=1"`
	// LookupCacheBytes bounds the memory kept for repeated store lookups. 0 disables it.
	LookupCacheBytes int64 `mapstructure:"lookup_cache_bytes" toml:"lookup_cache_bytes" json:"lookup_cache_bytes" jsonschema:"minimum=0"`
	// IgnoredSchemes lists URL schemes whose icons are never recorded.
	IgnoredSchemes []string `mapstructure:"ignored_schemes" toml:"ignored_schemes" json:"ignored_schemes"`
}

// AutosaveConfig controls how recorded icons are batched before being stored.
type AutosaveConfig struct {
	DelayMs    int `mapstructure:"delay_ms" toml:"delay_ms" json:"delay_ms" jsonschema:"minimum=1,description=Quiet period before a flush"`
	MaxDelayMs int `mapstructure:"max_delay_ms" toml:"max_delay_ms" json:"max_delay_ms" jsonschema:"minimum=1,description=Longest a change may wait for a flush"`
}

// PrivacyConfig holds privacy settings.
type PrivacyConfig struct {
	// PrivateMode disables icon recording entirely.
	PrivateMode bool `mapstructure:"private_mode" toml:"private_mode" json:"private_mode"`
}

// Delay returns the autosave quiet period.
func (c AutosaveConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// MaxDelay returns the autosave upper bound.
func (c AutosaveConfig) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMs) * time.Millisecond
}
