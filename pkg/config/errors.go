// Package config provides configuration loading and validation for the oracle.
package config

import "errors"

var (
	// ErrInvalidTimeout indicates a non-positive request timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidMinSources indicates a quorum below one.
	ErrInvalidMinSources = errors.New("min_sources must be >= 1")
	// ErrMissingOutput indicates that no output path is configured.
	ErrMissingOutput = errors.New("output path must be specified")
	// ErrUnnamedSource indicates a source override without a name.
	ErrUnnamedSource = errors.New("source override must have a name")
	// ErrDuplicateSource indicates a source name configured twice.
	ErrDuplicateSource = errors.New("duplicate source override")
	// ErrInvalidURL indicates a source URL override that is not HTTP(S).
	ErrInvalidURL = errors.New("source url must be an http(s) URL")
	// ErrInvalidLogLevel indicates an unknown logging level.
	ErrInvalidLogLevel = errors.New("invalid logging level")
	// ErrInvalidLogFormat indicates an unknown logging format.
	ErrInvalidLogFormat = errors.New("invalid logging format")
)
