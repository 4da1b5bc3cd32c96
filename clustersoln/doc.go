// Package clustersoln implements ClusterSolution: a balanced cluster
// membership vector, its relabeling-aware crossover, and the rebalance
// step that keeps every produced solution a balanced partition.
//
// RNG handling uses a single *rand.Rand per owning goroutine, never
// shared across goroutines, with deterministic derivation helpers for
// independent substreams.
package clustersoln
