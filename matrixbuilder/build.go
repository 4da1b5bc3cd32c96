package matrixbuilder

import (
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/timeslice"
)

// SlicePair is the congruence/conflict matrix pair built for one slice.
type SlicePair struct {
	G *pmatrix.Matrix
	C *pmatrix.Matrix
}

// Build invokes agg twice per slice (congruence role, conflict role) and
// zeroes both matrices' diagonals. The returned slice is index-aligned
// with slices. A slice with no actors gets a pair of nil matrices, which
// both drivers report as a degenerate result.
func Build(agg pmatrix.Aggregator, slices []timeslice.Slice) ([]SlicePair, error) {
	pairs := make([]SlicePair, len(slices))
	for i, sl := range slices {
		if len(sl.Skeleton.Labels) == 0 {
			continue
		}
		g, err := agg.Build(sl.Skeleton, sl.Buckets, pmatrix.RoleCongruence)
		if err != nil {
			return nil, err
		}
		c, err := agg.Build(sl.Skeleton, sl.Buckets, pmatrix.RoleConflict)
		if err != nil {
			return nil, err
		}
		g.ZeroDiagonal()
		c.ZeroDiagonal()
		pairs[i] = SlicePair{G: g, C: c}
	}
	return pairs, nil
}
