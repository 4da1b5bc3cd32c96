package genetic

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/mirenbz/dna/clustersoln"
	"github.com/mirenbz/dna/matrixops"
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/polresult"
	"github.com/mirenbz/dna/quality"
	"github.com/mirenbz/dna/rngutil"
)

// Params configures a GeneticDriver run over a single slice.
type Params struct {
	NumParents    int
	NumIterations int
	ElitePct      float64
	MutPct        float64
	Normalize     bool
	K             int
}

// convergenceWindow is the number of trailing generations the
// early-convergence test compares against.
const convergenceWindow = 10

// Drive runs the generation loop over the slice whose congruence/conflict
// matrices are g/c, returning the degenerate result when N <= K or the
// combined matrix norm is zero. seed derives the slice-local RNG.
//
// The per-generation sdQ is Σ_p sqrt((q[p]-avgQ)²/P), a sum of per-element
// terms; it is not the standard deviation, which would take a single
// square root of the mean squared deviation.
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
	pop := make([]*clustersoln.Solution, params.NumParents)
	for i := range pop {
		s, err := clustersoln.RandomBalanced(n, params.K, rng)
		if err != nil {
			return polresult.Result{}, err
		}
		pop[i] = s
	}

	iterParams := IterationParams{G: g, C: c, Normalize: params.Normalize, K: params.K, ElitePct: params.ElitePct, MutPct: params.MutPct}

	var maxQArr, avgQArr, sdQArr []float64
	lastIndex := params.NumIterations - 1
	earlyConvergence := false

	for i := 0; i < params.NumIterations; i++ {
		children, q, err := Iterate(pop, iterParams, rng)
		if err != nil {
			return polresult.Result{}, err
		}

		maxQ := maxFloat(q)
		avgQ := stat.Mean(q, nil)
		p := float64(len(q))
		var sdQ float64
		for _, v := range q {
			sdQ += math.Sqrt(math.Pow(v-avgQ, 2) / p)
		}

		maxQArr = append(maxQArr, maxQ)
		avgQArr = append(avgQArr, avgQ)
		sdQArr = append(sdQArr, sdQ)

		pop = children

		if i >= convergenceWindow {
			if round2(sdQ) == 0 && round2(maxQ) == round2(avgQ) {
				converged := true
				for j := i - convergenceWindow; j < i; j++ {
					if round2(maxQArr[j]) != round2(maxQ) || round2(avgQArr[j]) != round2(avgQ) || round2(sdQArr[j]) != round2(sdQ) {
						converged = false
						break
					}
				}
				if converged {
					lastIndex = i
					earlyConvergence = true
					break
				}
			}
		}
	}

	finalIndex := lastIndex
	if finalIndex >= len(maxQArr) {
		finalIndex = len(maxQArr) - 1
	}
	target := round2(maxQArr[finalIndex])
	for finalIndex > 0 && round2(maxQArr[finalIndex-1]) == target {
		finalIndex--
	}
	maxQArr = maxQArr[:finalIndex+1]
	avgQArr = avgQArr[:finalIndex+1]
	sdQArr = sdQArr[:finalIndex+1]

	bestIdx := 0
	bestQ := math.Inf(-1)
	for i, s := range pop {
		v, err := quality.Score(s.Memberships, g, c, params.Normalize, params.K)
		if err != nil {
			return polresult.Result{}, err
		}
		if v > bestQ {
			bestQ = v
			bestIdx = i
		}
	}

	return polresult.Result{
		MaxQArray:        maxQArr,
		AvgQArray:        avgQArr,
		SdQArray:         sdQArr,
		MaxQ:             maxQArr[len(maxQArr)-1],
		Memberships:      pop[bestIdx].Clone().Memberships,
		RowNames:         rowNames,
		EarlyConvergence: earlyConvergence,
		Start:            start,
		Midpoint:         midpoint,
		End:              end,
	}, nil
}

func maxFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
