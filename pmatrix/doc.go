// Package pmatrix defines the paired congruence/conflict Matrix, the
// BucketArray the Aggregator collaborator consumes, and the Aggregator
// interface itself.
//
// Matrix wraps a dense N×N row-major buffer with parallel row/column
// labels and the (start, midpoint, end) timestamps of the slice it was
// built from. It is the "skeleton plus data" unit passed between
// timeslice, the Aggregator collaborator, and matrixbuilder.
//
// The Aggregator's one-mode-projection semantics (subtract/average
// reduction, congruence vs. conflict role) are a black box supplied by
// the collaborator; this package only defines the interface shape and
// the data it carries.
package pmatrix
