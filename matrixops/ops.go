// SPDX-License-Identifier: MIT
package matrixops

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mirenbz/dna/pmatrix"
)

// Norm1 returns the sum of absolute values of every cell of m.
// Complexity: O(N²).
func Norm1(m *pmatrix.Matrix) (float64, error) {
	if m == nil {
		return 0, pmatrix.ErrNilMatrix
	}
	raw := m.Raw()
	if len(raw) == 0 {
		return 0, nil
	}
	return floats.Norm(raw, 1), nil
}

// RanksDescending returns r where r[i] is the descending rank (0 =
// largest) of xs[i]. Ties are broken by lower original index getting the
// lower rank: a stable descending sort on (value desc, index asc).
//
// Complexity: O(n log n).
func RanksDescending(xs []float64) []int {
	n := len(xs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if xs[ia] != xs[ib] {
			return xs[ia] > xs[ib]
		}
		return ia < ib
	})
	ranks := make([]int, n)
	for rank, idx := range order {
		ranks[idx] = rank
	}
	return ranks
}
