// SPDX-License-Identifier: MIT
package clustersoln_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirenbz/dna/clustersoln"
)

func assertBalanced(t *testing.T, s *clustersoln.Solution) {
	t.Helper()
	counts := make(map[int]int)
	for _, m := range s.Memberships {
		require.GreaterOrEqual(t, m, 0)
		require.Less(t, m, s.K)
		counts[m]++
	}
	min, max := -1, -1
	for _, c := range counts {
		if min == -1 || c < min {
			min = c
		}
		if max == -1 || c > max {
			max = c
		}
	}
	require.LessOrEqual(t, max-min, 1)
}

func TestRandomBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 23; n++ {
		for k := 2; k <= n; k++ {
			s, err := clustersoln.RandomBalanced(n, k, rng)
			require.NoError(t, err)
			require.Len(t, s.Memberships, n)
			assertBalanced(t, s)
		}
	}
}

func TestRandomBalancedInvalidParams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := clustersoln.RandomBalanced(3, 5, rng)
	require.ErrorIs(t, err, clustersoln.ErrInvalidParams)
}

func TestCrossoverProducesBalancedPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		a, err := clustersoln.RandomBalanced(11, 3, rng)
		require.NoError(t, err)
		b, err := clustersoln.RandomBalanced(11, 3, rng)
		require.NoError(t, err)

		child, err := a.Crossover(b, rng)
		require.NoError(t, err)
		require.Len(t, child.Memberships, 11)
		assertBalanced(t, child)
	}
}

func TestCrossoverDimensionMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, err := clustersoln.RandomBalanced(10, 2, rng)
	require.NoError(t, err)
	b, err := clustersoln.RandomBalanced(10, 5, rng)
	require.NoError(t, err)
	_, err = a.Crossover(b, rng)
	require.ErrorIs(t, err, clustersoln.ErrDimensionMismatch)
}

func TestCloneIsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := clustersoln.RandomBalanced(6, 2, rng)
	require.NoError(t, err)
	b := a.Clone()
	b.Memberships[0] = (b.Memberships[0] + 1) % 2
	require.NotEqual(t, a.Memberships[0], b.Memberships[0])
}
