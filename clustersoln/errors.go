// SPDX-License-Identifier: MIT
package clustersoln

import "errors"

// Sentinel errors for the clustersoln package.
var (
	// ErrInvalidParams indicates N or K is non-positive, or K > N.
	ErrInvalidParams = errors.New("clustersoln: invalid N or K")

	// ErrDimensionMismatch indicates two Solutions being crossed over
	// disagree on N or K.
	ErrDimensionMismatch = errors.New("clustersoln: dimension mismatch")
)
