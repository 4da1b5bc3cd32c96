// SPDX-License-Identifier: MIT
package clustersoln

import (
	"math/rand"

	"github.com/mirenbz/dna/matrixops"
	"github.com/mirenbz/dna/rngutil"
)

// Solution is a ClusterSolution: an array of length N of integers in
// [0, K), whose multiset of values is a balanced partition (cluster sizes
// differ by at most 1).
type Solution struct {
	N, K        int
	Memberships []int
}

// targetSizes returns the balanced-partition target size of every
// cluster: floor(N/K), with the first N mod K clusters getting one extra
// member.
func targetSizes(n, k int) []int {
	base := n / k
	rem := n % k
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// RandomBalanced constructs a balanced membership vector: repeat the
// pattern 0,1,...,K-1 ceil(N/K) times, truncate to length N, then shuffle
// uniformly at random.
func RandomBalanced(n, k int, rng *rand.Rand) (*Solution, error) {
	if n <= 0 || k <= 0 || k > n {
		return nil, ErrInvalidParams
	}
	reps := (n + k - 1) / k
	members := make([]int, 0, reps*k)
	for r := 0; r < reps; r++ {
		for c := 0; c < k; c++ {
			members = append(members, c)
		}
	}
	members = members[:n]
	rngutil.ShuffleInts(members, rng)
	return &Solution{N: n, K: k, Memberships: members}, nil
}

// Clone returns a deep copy.
func (s *Solution) Clone() *Solution {
	cp := make([]int, len(s.Memberships))
	copy(cp, s.Memberships)
	return &Solution{N: s.N, K: s.K, Memberships: cp}
}

// sizes returns the current per-cluster counts.
func (s *Solution) sizes() []int {
	sizes := make([]int, s.K)
	for _, m := range s.Memberships {
		sizes[m]++
	}
	return sizes
}

// Crossover produces a fresh, balanced membership vector by relabeling
// self's clusters onto other's via maximum-overlap matching, uniformly
// mixing the relabeled self with other, then rebalancing.
func (s *Solution) Crossover(other *Solution, rng *rand.Rand) (*Solution, error) {
	if s.N != other.N || s.K != other.K {
		return nil, ErrDimensionMismatch
	}
	n, k := s.N, s.K

	// Step 1: overlap matrix O[self][other].
	overlap := make([][]int, k)
	for i := range overlap {
		overlap[i] = make([]int, k)
	}
	for i := 0; i < n; i++ {
		overlap[s.Memberships[i]][other.Memberships[i]]++
	}

	// Step 2: greedy relabeling by descending overlap, tie-broken by
	// lower column index, via RanksDescending per row.
	relabel := make([]int, k)
	assignedCol := make([]bool, k)
	for row := 0; row < k; row++ {
		ranks := matrixops.RanksDescending(toFloat(overlap[row]))
		order := make([]int, k)
		for col, r := range ranks {
			order[r] = col
		}
		for _, col := range order {
			if !assignedCol[col] {
				relabel[row] = col
				assignedCol[col] = true
				break
			}
		}
	}

	// Step 3: uniform crossover between relabeled self and other.
	child := make([]int, n)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			child[i] = relabel[s.Memberships[i]]
		} else {
			child[i] = other.Memberships[i]
		}
	}

	cs := &Solution{N: n, K: k, Memberships: child}
	cs.rebalance()
	return cs, nil
}

func toFloat(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// rebalance restores a balanced partition: while any cluster exceeds its
// target size, move the lowest-indexed member of that cluster to the
// first cluster (scanning 0..K-1) still under its target.
func (s *Solution) rebalance() {
	targets := targetSizes(s.N, s.K)
	counts := s.sizes()

	for {
		over := -1
		for c, cnt := range counts {
			if cnt > targets[c] {
				over = c
				break
			}
		}
		if over == -1 {
			return
		}
		// Lowest-indexed member currently in the over-full cluster.
		moveIdx := -1
		for i, m := range s.Memberships {
			if m == over {
				moveIdx = i
				break
			}
		}
		// First cluster still under target.
		dest := -1
		for c, cnt := range counts {
			if cnt < targets[c] {
				dest = c
				break
			}
		}
		s.Memberships[moveIdx] = dest
		counts[over]--
		counts[dest]++
	}
}
