// Package matrixops provides the two primitive operators the rest of this
// module builds on: the entrywise 1-norm and a descending rank transform
// with a stable, deterministic tie-break.
//
// Norm1 is expressed via gonum's floats.Norm (the general L-norm with
// L=1), so the sum-of-absolute-values reduction is the ecosystem's
// vectorized implementation rather than a hand-rolled loop.
package matrixops
