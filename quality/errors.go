// SPDX-License-Identifier: MIT
package quality

import "errors"

// Sentinel errors for the quality package.
var (
	// ErrDimensionMismatch indicates memberships, G and C disagree on N.
	ErrDimensionMismatch = errors.New("quality: dimension mismatch")

	// ErrInvalidMembership indicates a membership value outside [0, K).
	// The genetic and greedy drivers return it to their caller, and the
	// engine then records a degenerate result for that slice; no caller
	// replaces the offending solution with a fresh one.
	ErrInvalidMembership = errors.New("quality: membership out of [0, K) range")
)
