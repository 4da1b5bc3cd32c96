package genetic

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/mirenbz/dna/clustersoln"
	"github.com/mirenbz/dna/matrixops"
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/quality"
)

// IterationParams configures one GeneticIteration over a fixed congruence/
// conflict matrix pair.
type IterationParams struct {
	G, C      *pmatrix.Matrix
	Normalize bool
	K         int
	ElitePct  float64
	MutPct    float64
}

// Iterate evaluates cs, carries the elite over unchanged, fills the rest
// of the next generation via hybrid-roulette crossover, mutates every
// non-elite child, and returns the child population alongside the
// evaluated quality vector of cs itself.
func Iterate(cs []*clustersoln.Solution, params IterationParams, rng *rand.Rand) ([]*clustersoln.Solution, []float64, error) {
	p := len(cs)
	if p == 0 {
		return nil, nil, ErrEmptyPopulation
	}

	q := make([]float64, p)
	for i, s := range cs {
		v, err := quality.Score(s.Memberships, params.G, params.C, params.Normalize, params.K)
		if err != nil {
			return nil, nil, err
		}
		q[i] = v
	}

	numElites := maxInt(1, int(math.Round(params.ElitePct*float64(p))))
	n := cs[0].N
	numMutations := int(math.Round(params.MutPct * float64(n) / 2))

	children := make([]*clustersoln.Solution, 0, p)
	ranks := matrixops.RanksDescending(q)
	eliteOrder := make([]int, numElites)
	for i, r := range ranks {
		if r < numElites {
			eliteOrder[r] = i
		}
	}
	for _, idx := range eliteOrder {
		children = append(children, cs[idx].Clone())
	}

	qPrime := make([]float64, p)
	minQ := q[0]
	for _, v := range q {
		if v < minQ {
			minQ = v
		}
	}
	if minQ < 0 {
		for i, v := range q {
			qPrime[i] = v - minQ
		}
	} else {
		copy(qPrime, q)
	}
	var total float64
	for _, v := range qPrime {
		total += v
	}
	if total == 0 {
		for i := range qPrime {
			qPrime[i] = 1
		}
		total = float64(p)
	}
	cumulative := make([]float64, p)
	var acc float64
	for i, v := range qPrime {
		acc += v
		cumulative[i] = acc
	}
	roulette := func() int {
		x := rng.Float64() * total
		for i, c := range cumulative {
			if x < c {
				return i
			}
		}
		return p - 1
	}

	for len(children) < p {
		a := roulette()
		var b int
		for {
			if rng.Intn(2) == 0 {
				b = roulette()
			} else {
				b = rng.Intn(p)
			}
			if b != a {
				break
			}
		}
		child, err := cs[a].Crossover(cs[b], rng)
		if err != nil {
			return nil, nil, err
		}
		children = append(children, child)
	}

	for _, child := range children[numElites:] {
		mutate(child, numMutations, rng)
	}

	return children, q, nil
}

// mutate swaps numMutations unique unordered (i, j) pairs of differently
// clustered members of s, leaving cluster counts unchanged.
func mutate(s *clustersoln.Solution, numMutations int, rng *rand.Rand) {
	n := s.N
	if numMutations <= 0 || n < 2 {
		return
	}
	maxPairs := combin.Binomial(n, 2)
	if numMutations > maxPairs {
		numMutations = maxPairs
	}

	type pair struct{ i, j int }
	seen := make(map[pair]bool, numMutations)
	attempts := 0
	maxAttempts := maxPairs * 4
	for len(seen) < numMutations && attempts < maxAttempts {
		attempts++
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		if s.Memberships[i] == s.Memberships[j] {
			continue
		}
		key := pair{i, j}
		if seen[key] {
			continue
		}
		seen[key] = true
		s.Memberships[i], s.Memberships[j] = s.Memberships[j], s.Memberships[i]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
