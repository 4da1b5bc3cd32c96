// SPDX-License-Identifier: MIT
package pmatrix

import "github.com/mirenbz/dna/statement"

// BucketArray is a three-dimensional array indexed by (i1, i2, q), i1
// ranging over variable-1 labels, i2 over variable-2 labels, q over
// qualifier categories (size 1 if no qualifier). Each cell holds the
// ordered sequence of Statements whose attribute tuple matches the
// indices.
type BucketArray struct {
	V1, V2, Q []string

	idx1, idx2, idxQ map[string]int
	cells            [][][][]statement.Statement // [i1][i2][q]
}

// NewBucketArray allocates an empty BucketArray over the given label
// dimensions. q must be non-empty (pass []string{""} for "no qualifier").
func NewBucketArray(v1, v2, q []string) *BucketArray {
	b := &BucketArray{
		V1: append([]string(nil), v1...),
		V2: append([]string(nil), v2...),
		Q:  append([]string(nil), q...),
	}
	b.idx1 = indexLabels(b.V1)
	b.idx2 = indexLabels(b.V2)
	b.idxQ = indexLabels(b.Q)

	b.cells = make([][][][]statement.Statement, len(b.V1))
	for i := range b.cells {
		b.cells[i] = make([][][]statement.Statement, len(b.V2))
	}
	return b
}

func indexLabels(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}

// Dims returns (|V1|, |V2|, |Q|).
func (b *BucketArray) Dims() (int, int, int) {
	return len(b.V1), len(b.V2), len(b.Q)
}

// Add files stmt into the cell identified by the three labels. Unknown
// labels are reported via ErrUnknownLabel rather than silently dropped, so
// callers can decide whether a mismatch is expected (e.g. a statement
// outside the slice's local label set for non-Gaussian kernels).
func (b *BucketArray) Add(label1, label2, labelQ string, stmt statement.Statement) error {
	i1, ok := b.idx1[label1]
	if !ok {
		return ErrUnknownLabel
	}
	i2, ok := b.idx2[label2]
	if !ok {
		return ErrUnknownLabel
	}
	iq, ok := b.idxQ[labelQ]
	if !ok {
		return ErrUnknownLabel
	}
	if b.cells[i1][i2] == nil {
		b.cells[i1][i2] = make([][]statement.Statement, len(b.Q))
	}
	b.cells[i1][i2][iq] = append(b.cells[i1][i2][iq], stmt)
	return nil
}

// At returns the statements filed at (i1, i2, q), or nil if none.
func (b *BucketArray) At(i1, i2, q int) []statement.Statement {
	if i1 < 0 || i1 >= len(b.V1) || i2 < 0 || i2 >= len(b.V2) || q < 0 || q >= len(b.Q) {
		return nil
	}
	if b.cells[i1][i2] == nil {
		return nil
	}
	return b.cells[i1][i2][q]
}

// Role selects which one-mode projection the Aggregator collaborator
// should produce.
type Role string

// The two projection roles MatrixBuilder requests per slice.
const (
	RoleCongruence Role = "congruence"
	RoleConflict   Role = "conflict"
)

// Aggregator is the external collaborator that turns a Skeleton and a
// BucketArray into a filled Matrix for a given Role. Its internal
// normalization/combination choice (subtract/average, no isolates) is
// fixed by the caller's initialization and is out of this module's scope.
type Aggregator interface {
	Build(skeleton Skeleton, buckets *BucketArray, role Role) (*Matrix, error)
}
