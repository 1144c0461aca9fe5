// Package sources provides the price source registry and per-source parsers.
package sources

import "errors"

var (
	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrMissingField indicates a response missing an expected field.
	ErrMissingField = errors.New("response missing field")
	// ErrNonPositivePrice indicates a parsed price of zero or below.
	ErrNonPositivePrice = errors.New("non-positive price")
	// ErrAPIError indicates an explicit error reported inside the payload.
	ErrAPIError = errors.New("API error")
	// ErrUnknownSource indicates a configured override for a source that does not exist.
	ErrUnknownSource = errors.New("unknown source")
	// ErrNoSourcesEnabled indicates that every source has been disabled.
	ErrNoSourcesEnabled = errors.New("no sources enabled")
)
