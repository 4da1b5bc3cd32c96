package genetic_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirenbz/dna/clustersoln"
	"github.com/mirenbz/dna/genetic"
	"github.com/mirenbz/dna/pmatrix"
)

func blockMatrices(t *testing.T) (*pmatrix.Matrix, *pmatrix.Matrix) {
	t.Helper()
	labels := []string{"a", "b", "c", "d"}
	g, err := pmatrix.New("g", labels, time.Time{}, time.Time{}, time.Time{})
	require.NoError(t, err)
	gv := [][]float64{
		{0, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 3, 0},
	}
	for i := range gv {
		for j := range gv[i] {
			require.NoError(t, g.Set(i, j, gv[i][j]))
		}
	}
	c, err := pmatrix.New("c", labels, time.Time{}, time.Time{}, time.Time{})
	require.NoError(t, err)
	return g, c
}

func TestIteratePreservesPopulationSize(t *testing.T) {
	g, c := blockMatrices(t)
	rng := rand.New(rand.NewSource(1))
	pop := make([]*clustersoln.Solution, 8)
	for i := range pop {
		s, err := clustersoln.RandomBalanced(4, 2, rng)
		require.NoError(t, err)
		pop[i] = s
	}

	children, q, err := genetic.Iterate(pop, genetic.IterationParams{
		G: g, C: c, Normalize: true, K: 2, ElitePct: 0.25, MutPct: 0.5,
	}, rng)
	require.NoError(t, err)
	require.Len(t, children, len(pop))
	require.Len(t, q, len(pop))

	for _, child := range children {
		sizes := map[int]int{}
		for _, m := range child.Memberships {
			sizes[m]++
		}
		require.Len(t, sizes, 2)
		for _, cnt := range sizes {
			require.InDelta(t, 2, cnt, 0)
		}
	}
}

func TestIterateEmptyPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, _, err := genetic.Iterate(nil, genetic.IterationParams{}, rng)
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)
}
