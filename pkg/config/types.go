package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Oracle  OracleConfig   `yaml:"oracle"`
	Sources []SourceConfig `yaml:"sources"`
	Metrics MetricsConfig  `yaml:"metrics"`
	Logging LoggingConfig  `yaml:"logging"`
}

// OracleConfig configures the collection and submission pipeline.
type OracleConfig struct {
	Timeout    Duration `yaml:"timeout"`     // per-request HTTP timeout
	MinSources int      `yaml:"min_sources"` // quorum: minimum successful sources
	Output     string   `yaml:"output"`      // submission JSON path
	CodeOrLogs string   `yaml:"code_or_logs"`
}

// SourceConfig overrides a built-in price source.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"` // nil means keep the default (enabled)
	URL     string `yaml:"url"`     // override endpoint, empty keeps the default
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // stdout, stderr or a file path (the audit log)
}

// Duration is a wrapper around time.Duration for YAML parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}

// ToDuration converts Duration to time.Duration.
func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}
