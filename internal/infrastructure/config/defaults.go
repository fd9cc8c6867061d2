package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultAutosaveDelayMs    = 1000
	defaultAutosaveMaxDelayMs = 30000
	defaultWriteQueueSize     = 256
	defaultLookupCacheBytes   = 4 << 20
)

// defaultIgnoredSchemes never carry a meaningful favicon.
var defaultIgnoredSchemes = []string{"dumb", "ftp", "file", "view-source"}

// DefaultConfig returns the built-in configuration.
// Database.Path is left empty and resolved at load time.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Favicon: FaviconConfig{
			Autosave: AutosaveConfig{
				DelayMs:    defaultAutosaveDelayMs,
				MaxDelayMs: defaultAutosaveMaxDelayMs,
			},
			WriteQueueSize:   defaultWriteQueueSize,
			LookupCacheBytes: defaultLookupCacheBytes,
			IgnoredSchemes:   append([]string(nil), defaultIgnoredSchemes...),
		},
	}
}
