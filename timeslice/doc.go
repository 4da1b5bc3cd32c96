// Package timeslice generates the sequence of (start, midpoint, end)
// windows over a sorted statement stream and builds the per-window
// BucketArray the Aggregator collaborator consumes.
//
// Two regimes:
//
//   - Gaussian kernel: every slice shares one global label-set skeleton
//     (V1, V2, Q computed once over all filtered statements) so kernel
//     weighting can reach across the whole range.
//   - uniform/triangular/epanechnikov kernels: each slice computes its own
//     local label set from the statements falling inside its open band
//     (max(b, γ-w/2), min(e, γ+w/2)), both endpoints excluded, where b
//     and e bound the range before any indentation.
//
// WindowNone bypasses slicing entirely: Build returns a single slice
// spanning every filtered statement.
package timeslice
