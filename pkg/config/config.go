package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCodeOrLogs is the default value for the submission provenance field.
const DefaultCodeOrLogs = "Code: https://github.com/mastrophot/agent-wars-oracle" +
	" | Logs: https://github.com/mastrophot/agent-wars-oracle/blob/main/artifacts/oracle_run.log"

// Load loads configuration from a YAML file and environment variables.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		cleanPath := filepath.Clean(path)
		data, err := os.ReadFile(cleanPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults sets default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Oracle.Timeout.ToDuration() == 0 {
		cfg.Oracle.Timeout = Duration(12 * time.Second)
	}
	if cfg.Oracle.MinSources == 0 {
		cfg.Oracle.MinSources = 3
	}
	if cfg.Oracle.Output == "" {
		cfg.Oracle.Output = "artifacts/oracle_submission.json"
	}
	if cfg.Oracle.CodeOrLogs == "" {
		cfg.Oracle.CodeOrLogs = DefaultCodeOrLogs
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9091"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "artifacts/oracle_run.log"
	}
}
