// SPDX-License-Identifier: MIT

// Package aggregator provides OneMode, a reference implementation of the
// Aggregator collaborator: a one-mode projection of the variable-1
// (actor) dimension of a BucketArray onto a congruence or conflict
// Matrix over variable-2 (concept) and qualifier agreement.
//
// OneMode scores each concept by qualifier overlap alone (agreement for
// the congruence role, disagreement for the conflict role); it does not
// subtract one from the other. It averages over active concepts, with no
// isolates: a concept neither actor in a pair discussed does not pull
// the pair's score toward zero. These choices are an implementation detail of this
// collaborator, not part of the core's contract with it.
package aggregator
