// SPDX-License-Identifier: MIT
package quality

import (
	"math"

	"github.com/mirenbz/dna/matrixops"
	"github.com/mirenbz/dna/pmatrix"
)

// Score computes the absolute-difference polarization score for
// memberships (length N, values in [0, K)) against the congruence matrix
// G and conflict matrix C (both N×N). When normalize is true the result
// is scaled into [0, 1] whenever gNorm+cNorm > 0.
//
// Complexity: O(N²) for the dyad accumulation, O(N) for cluster sizing.
func Score(memberships []int, G, C *pmatrix.Matrix, normalize bool, k int) (float64, error) {
	n := len(memberships)
	if G.N() != n || C.N() != n {
		return 0, ErrDimensionMismatch
	}

	gNorm, err := matrixops.Norm1(G)
	if err != nil {
		return 0, err
	}
	cNorm, err := matrixops.Norm1(C)
	if err != nil {
		return 0, err
	}

	sizes := make([]int, k)
	for _, mi := range memberships {
		if mi < 0 || mi >= k {
			return 0, ErrInvalidMembership
		}
		sizes[mi]++
	}

	var w, b int
	for _, s := range sizes {
		w += s * (s - 1)
	}
	b = n*(n-1) - w

	expWithinG := make([]float64, k)
	if w > 0 {
		for ki, s := range sizes {
			expWithinG[ki] = (float64(s*(s-1)) / float64(w)) * (gNorm / float64(w))
		}
	}

	gRaw, cRaw := G.Raw(), C.Raw()
	var expBetweenCDenom float64
	if b > 0 {
		expBetweenCDenom = cNorm / float64(b)
	}

	var d float64
	for i := 0; i < n; i++ {
		mi := memberships[i]
		rowOff := i * n
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			gij := gRaw[rowOff+j]
			cij := cRaw[rowOff+j]
			mj := memberships[j]
			if mi == mj {
				d += math.Abs(gij - expWithinG[mi])
				d += math.Abs(cij)
			} else {
				d += math.Abs(gij)
				var expBetweenC float64
				if b > 0 {
					expBetweenC = float64(sizes[mi]*sizes[mj]) * expBetweenCDenom
				}
				d += math.Abs(cij - expBetweenC)
			}
		}
	}

	if normalize {
		denom := 2 * (gNorm + cNorm)
		if denom > 0 {
			return d / denom, nil
		}
		return 0, nil
	}
	return 0.5 * d, nil
}
