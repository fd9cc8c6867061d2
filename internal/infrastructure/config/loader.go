package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a configuration manager for configFile.
// An empty configFile selects $XDG_CONFIG_HOME/favicache/config.toml.
func NewManager(configFile string) (*Manager, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// FAVICACHE_DATABASE_PATH, FAVICACHE_FAVICON_AUTOSAVE_DELAY_MS, ...
	v.SetEnvPrefix("FAVICACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names for the settings most often overridden by hand.
	bindings := map[string]string{
		"logging.level":        "FAVICACHE_LOG_LEVEL",
		"logging.format":       "FAVICACHE_LOG_FORMAT",
		"privacy.private_mode": "FAVICACHE_PRIVATE_MODE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
	}, nil
}

// Load reads the configuration file, creating it with defaults when missing,
// and applies environment overrides.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.ensureConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Favicon.IgnoredSchemes = append([]string(nil), m.config.Favicon.IgnoredSchemes...)
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("favicon.autosave.delay_ms", defaults.Favicon.Autosave.DelayMs)
	m.viper.SetDefault("favicon.autosave.max_delay_ms", defaults.Favicon.Autosave.MaxDelayMs)
	m.viper.SetDefault("favicon.write_queue_size", defaults.Favicon.WriteQueueSize)
	m.viper.SetDefault("favicon.lookup_cache_bytes", defaults.Favicon.LookupCacheBytes)
	m.viper.SetDefault("favicon.ignored_schemes", defaults.Favicon.IgnoredSchemes)
	m.viper.SetDefault("privacy.private_mode", defaults.Privacy.PrivateMode)
}

// ensureConfigFile writes the default configuration if no file exists yet.
func (m *Manager) ensureConfigFile() error {
	_, err := os.Stat(m.configFile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config file at %s: %w", m.configFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configFile, err)
	}
	return nil
}

// reload re-reads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.configFile, err)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	schemes := make([]string, 0, len(config.Favicon.IgnoredSchemes))
	for _, s := range config.Favicon.IgnoredSchemes {
		s = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ":"))
		if s != "" {
			schemes = append(schemes, s)
		}
	}
	config.Favicon.IgnoredSchemes = schemes
}
