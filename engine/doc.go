// SPDX-License-Identifier: MIT

// Package engine wires StatementSource, TimeSlicer, MatrixBuilder and the
// genetic/greedy drivers into PolarizationEngine: configuration
// validation with fallback, sequential per-slice seed derivation from the
// configured base seed, and a parallel worker-pool map over slices that collects
// results back into chronological order.
package engine
