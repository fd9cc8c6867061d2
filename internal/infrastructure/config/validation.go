package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

var validLogFormats = []string{"console", "json"}

// validateConfig collects every invalid value into a single error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	var validationErrors []string
	autosave := config.Favicon.Autosave
	if autosave.DelayMs <= 0 {
		validationErrors = append(validationErrors, "favicon.autosave.delay_ms must be positive")
	}
	if autosave.MaxDelayMs <= 0 {
		validationErrors = append(validationErrors, "favicon.autosave.max_delay_ms must be positive")
	} else if autosave.MaxDelayMs < autosave.DelayMs {
		validationErrors = append(validationErrors, "favicon.autosave.max_delay_ms must not be less than delay_ms")
	}
	if config.Favicon.WriteQueueSize <= 0 {
		validationErrors = append(validationErrors, "favicon.write_queue_size must be positive")
	}
	if config.Favicon.LookupCacheBytes < 0 {
		validationErrors = append(validationErrors, "favicon.lookup_cache_bytes must be non-negative")
	}
	return validationErrors
}
