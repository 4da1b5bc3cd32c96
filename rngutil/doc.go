// Package rngutil centralizes deterministic random generation for the
// clustering optimizers.
//
// Goals:
//   - Determinism: same seed => identical results, regardless of goroutine
//     scheduling elsewhere in the program.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     inside package internals (callers that want nondeterminism pass
//     time.Now().UnixNano() explicitly, e.g. engine's randomSeed==0 path).
//   - Safety: no panics; these are pure functions over int64 seeds.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Every slice-local and
// population-local RNG in this module is owned by exactly one goroutine;
// independent streams are derived up front via DeriveSeed before dispatch.
package rngutil
