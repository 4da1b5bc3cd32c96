// SPDX-License-Identifier: MIT

// Package matrixbuilder orchestrates the Aggregator collaborator: for each
// timeslice.Slice it builds the paired congruence and conflict matrices
// and zeroes their diagonals.
package matrixbuilder
