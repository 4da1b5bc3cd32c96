package greedy

import (
	"time"

	"github.com/mirenbz/dna/clustersoln"
	"github.com/mirenbz/dna/matrixops"
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/polresult"
	"github.com/mirenbz/dna/quality"
	"github.com/mirenbz/dna/rngutil"
)

// Params configures a GreedyDriver run over a single slice.
type Params struct {
	Normalize bool
	K         int
}

// Drive runs first-improvement pairwise swapping to a fixed point over
// the slice whose congruence/conflict matrices are g/c.
//
// Degeneracy test: N <= K or norm1(G)+norm1(C) == 0. A guard of N >= K
// would admit N == K into the optimizer, where every cluster has exactly
// one member and no swap can ever change membership, so this driver uses
// the stricter N <= K guard, matching GeneticDriver.
func Drive(g, c *pmatrix.Matrix, rowNames []string, start, midpoint, end time.Time, params Params, seed int64) (polresult.Result, error) {
	n := g.N()
	if n <= params.K {
		return polresult.Degenerate(start, midpoint, end), nil
	}
	gNorm, err := matrixops.Norm1(g)
	if err != nil {
		return polresult.Result{}, err
	}
	cNorm, err := matrixops.Norm1(c)
	if err != nil {
		return polresult.Result{}, err
	}
	if gNorm+cNorm == 0 {
		return polresult.Degenerate(start, midpoint, end), nil
	}

	rng := rngutil.FromSeed(seed)
	sol, err := clustersoln.RandomBalanced(n, params.K, rng)
	if err != nil {
		return polresult.Result{}, err
	}

	currentQ, err := quality.Score(sol.Memberships, g, c, params.Normalize, params.K)
	if err != nil {
		return polresult.Result{}, err
	}
	maxQ := []float64{currentQ}
	best := sol.Clone().Memberships

	for {
		changed := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if sol.Memberships[i] == sol.Memberships[j] {
					continue
				}
				sol.Memberships[i], sol.Memberships[j] = sol.Memberships[j], sol.Memberships[i]
				q, err := quality.Score(sol.Memberships, g, c, params.Normalize, params.K)
				if err != nil {
					return polresult.Result{}, err
				}
				if q > currentQ {
					currentQ = q
					maxQ = append(maxQ, q)
					best = sol.Clone().Memberships
					changed = true
				} else {
					sol.Memberships[i], sol.Memberships[j] = sol.Memberships[j], sol.Memberships[i]
				}
			}
		}
		if !changed {
			break
		}
	}

	avgQ := append([]float64(nil), maxQ...)
	sdQ := make([]float64, len(maxQ))

	return polresult.Result{
		MaxQArray:        maxQ,
		AvgQArray:        avgQ,
		SdQArray:         sdQ,
		MaxQ:             maxQ[len(maxQ)-1],
		Memberships:      best,
		RowNames:         rowNames,
		EarlyConvergence: true,
		Start:            start,
		Midpoint:         midpoint,
		End:              end,
	}, nil
}
