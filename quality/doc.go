// Package quality implements the absolute-difference polarization score:
// the sum of absolute deviations of observed congruence
// from expected within-cluster congruence, plus absolute within-cluster
// conflict, plus absolute between-cluster congruence, plus absolute
// deviation of between-cluster conflict from expectation, scaled.
//
// The quality is higher for better polarization: larger magnitude of
// signed concentration within clusters that agree and between clusters
// that disagree. Both optimizers (genetic, greedy) treat Score as the
// sole fitness signal.
package quality
