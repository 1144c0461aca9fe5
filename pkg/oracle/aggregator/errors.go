// Package aggregator enforces the source quorum and computes the median price.
package aggregator

import "errors"

var (
	// ErrQuorumNotMet indicates fewer successful sources than required.
	// The run produces no submission when this occurs.
	ErrQuorumNotMet = errors.New("minimum source quorum not met")
)
