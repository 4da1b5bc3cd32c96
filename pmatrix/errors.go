// SPDX-License-Identifier: MIT
package pmatrix

import "errors"

// Sentinel errors for the pmatrix package.
//
// ERROR PRIORITY: shape/index -> nil matrix -> dimension mismatch ->
// unknown label.
var (
	// ErrInvalidDimensions indicates a requested N is not strictly positive.
	ErrInvalidDimensions = errors.New("pmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index is outside [0, N).
	ErrOutOfRange = errors.New("pmatrix: index out of range")

	// ErrNilMatrix indicates a nil *Matrix was used where norm1 or a
	// Matrix accessor (At, Set) required one. Fatal for the slice that triggered it,
	// never for the whole engine run.
	ErrNilMatrix = errors.New("pmatrix: nil matrix")

	// ErrDimensionMismatch indicates two labeled structures (e.g. a
	// skeleton and a bucket array) disagree on shape.
	ErrDimensionMismatch = errors.New("pmatrix: dimension mismatch")

	// ErrUnknownLabel indicates a bucket lookup referenced a label absent
	// from the BucketArray's dimension.
	ErrUnknownLabel = errors.New("pmatrix: unknown label")

	// ErrUnknownRole indicates an Aggregator was asked to build a Matrix
	// for a Role other than RoleCongruence or RoleConflict.
	ErrUnknownRole = errors.New("pmatrix: unknown role")
)
