// Package fetcher performs single-shot HTTP fetches against price sources.
package fetcher

import "errors"

var (
	// ErrUnexpectedStatus indicates a non-2xx HTTP status code.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status code")
)
