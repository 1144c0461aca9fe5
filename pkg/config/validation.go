package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Oracle.Timeout.ToDuration() <= 0 {
		return fmt.Errorf("oracle config: %w", ErrInvalidTimeout)
	}
	if cfg.Oracle.MinSources < 1 {
		return fmt.Errorf("oracle config: %w: %d", ErrInvalidMinSources, cfg.Oracle.MinSources)
	}
	if cfg.Oracle.Output == "" {
		return fmt.Errorf("oracle config: %w", ErrMissingOutput)
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for i, source := range cfg.Sources {
		if source.Name == "" {
			return fmt.Errorf("source %d: %w", i, ErrUnnamedSource)
		}
		name := strings.ToLower(source.Name)
		if seen[name] {
			return fmt.Errorf("source %d: %w: %s", i, ErrDuplicateSource, source.Name)
		}
		seen[name] = true
		if source.URL != "" && !strings.HasPrefix(source.URL, "http://") && !strings.HasPrefix(source.URL, "https://") {
			return fmt.Errorf("source %s: %w: %s", source.Name, ErrInvalidURL, source.URL)
		}
	}

	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, l := range validLevels {
		if strings.ToLower(cfg.Level) == l {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return fmt.Errorf("%w: %s (must be one of: %s)", ErrInvalidLogLevel, cfg.Level, strings.Join(validLevels, ", "))
	}

	format := strings.ToLower(cfg.Format)
	if format != "json" && format != "text" {
		return fmt.Errorf("%w: %s (must be 'json' or 'text')", ErrInvalidLogFormat, cfg.Format)
	}

	return nil
}
