// SPDX-License-Identifier: MIT

// Package genetic implements the genetic-algorithm optimizer: one
// generation's worth of evaluation, elite retention, hybrid-roulette
// crossover and mutation (Iterate), and the per-slice generation loop
// with early-convergence detection and history trimming (Drive).
package genetic
