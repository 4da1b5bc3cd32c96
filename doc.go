// Package dna computes a polarization time series over a sequence of signed
// relational networks derived from coded discourse-network statements.
//
// For each time slice the engine partitions actors into K clusters to
// maximize a quality score rewarding within-cluster agreement and
// between-cluster disagreement, using either a genetic algorithm or a
// greedy pairwise-swap local search. Sliding windows with kernel smoothing
// aggregate statement records into paired congruence/conflict matrices
// that feed the optimizer.
//
// # Layout
//
//	statement/     coded statement records and the StatementSource collaborator
//	pmatrix/       congruence/conflict Matrix, BucketArray, Aggregator collaborator
//	aggregator/    reference one-mode Aggregator (averaged over active concepts)
//	matrixops/     entrywise 1-norm and descending rank with stable tie-break
//	quality/       the absolute-difference polarization score
//	clustersoln/   balanced cluster membership vectors and relabeling crossover
//	rngutil/       deterministic RNG construction and seed derivation
//	polresult/     PolarizationResult and PolarizationResultTimeSeries
//	timeslice/     kernel-windowed slice generation over a statement stream
//	matrixbuilder/ per-slice Aggregator orchestration
//	genetic/       population, generations, elite retention, roulette crossover
//	greedy/        first-improvement pairwise swap local search
//	engine/        configuration, validation, and the parallel per-slice driver
//
// See each package's doc.go for details; the engine package is the single
// entry point most callers need (engine.New, (*Engine).Compute).
package dna
